package common

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const StatusLabelKeyPrefix = "ForienQuestLog.QuestTypes.Labels."

func init() {
	setStrings(language.English, map[string]string{
		StatusLabelKeyPrefix + "inactive":  "Inactive",
		StatusLabelKeyPrefix + "available": "Available",
		StatusLabelKeyPrefix + "active":    "In Progress",
		StatusLabelKeyPrefix + "completed": "Completed",
		StatusLabelKeyPrefix + "failed":    "Failed",
	})

	setStrings(language.BrazilianPortuguese, map[string]string{
		StatusLabelKeyPrefix + "inactive":  "Inativa",
		StatusLabelKeyPrefix + "available": "Disponível",
		StatusLabelKeyPrefix + "active":    "Em andamento",
		StatusLabelKeyPrefix + "completed": "Concluída",
		StatusLabelKeyPrefix + "failed":    "Falhou",
	})
}

func setStrings(lang language.Tag, messages map[string]string) {
	for key, msg := range messages {
		if err := message.SetString(lang, key, msg); err != nil {
			panic(err)
		}
	}
}

// MessageLocalizer looks keys up in the message catalog of one locale. Unknown keys are
// returned unchanged.
type MessageLocalizer struct {
	printer *message.Printer
}

func NewMessageLocalizer(locale string) *MessageLocalizer {
	return &MessageLocalizer{printer: message.NewPrinter(ParseLocale(locale))}
}

func (l *MessageLocalizer) Localize(key string) string {
	return l.printer.Sprintf(key)
}

func ParseLocale(locale string) language.Tag {
	tag, err := language.Parse(locale)
	if err != nil {
		return language.English
	}

	return tag
}

// SortNames sorts names in place with the collation rules of locale.
func SortNames(locale string, names []string) {
	c := collate.New(ParseLocale(locale))
	sort.SliceStable(names, func(i, j int) bool {
		return c.CompareString(names[i], names[j]) < 0
	})
}
