package common

import (
	"context"
	"fmt"
	"html"
	"regexp"

	"github.com/microcosm-cc/bluemonday"
)

// contentLinkPattern matches host content links such as @Actor[abc]{Mira} or
// @UUID[JournalEntry.xyz]{Notes}. The label is optional.
var contentLinkPattern = regexp.MustCompile(`@(UUID|Actor|Item|JournalEntry)\[([^\]]+)\](?:\{([^}]*)\})?`)

// HTMLEnricher expands content links into anchors and sanitizes the result.
type HTMLEnricher struct {
	policy *bluemonday.Policy
}

func NewHTMLEnricher() *HTMLEnricher {
	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("class", "data-uuid").OnElements("a")

	return &HTMLEnricher{policy: policy}
}

func (e *HTMLEnricher) Enrich(ctx context.Context, raw string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	expanded := contentLinkPattern.ReplaceAllStringFunc(raw, func(match string) string {
		groups := contentLinkPattern.FindStringSubmatch(match)
		uuid := groups[2]
		if groups[1] != "UUID" {
			uuid = groups[1] + "." + groups[2]
		}

		label := groups[3]
		if label == "" {
			label = uuid
		}

		return fmt.Sprintf(`<a class="content-link" href="#" data-uuid="%s">%s</a>`,
			html.EscapeString(uuid), html.EscapeString(label))
	})

	return e.policy.Sanitize(expanded), nil
}
