package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/questx-lab/questlog/pkg/errorx"
	"github.com/questx-lab/questlog/pkg/router"
	"github.com/questx-lab/questlog/pkg/xcontext"
)

func Logger() router.CloserFunc {
	return func(ctx context.Context, r *http.Request, err error) {
		info := fmt.Sprintf("%s | %s", r.Method, r.URL.Path)
		if err != nil {
			var errx errorx.Error
			if errors.As(err, &errx) {
				xcontext.Logger(ctx).Warnf("%s | %d", info, errx.Code)
			} else {
				xcontext.Logger(ctx).Errorf("%s | %d", info, -1)
			}
		} else {
			xcontext.Logger(ctx).Infof("%s", info)
		}
	}
}
