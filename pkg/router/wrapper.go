package router

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/mitchellh/mapstructure"
	"github.com/questx-lab/questlog/pkg/errorx"
	"github.com/questx-lab/questlog/pkg/xcontext"
)

func wrapHandler[Request, Response any](
	router *Router,
	method string,
	handler HandlerFunc[Request, Response],
) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := router.requestContext(r)

		err := func() error {
			if r.Method != method {
				return errorx.New(errorx.BadRequest, "Not support method %s", r.Method)
			}

			for _, middleware := range router.befores {
				next, err := middleware(ctx, r)
				if err != nil {
					return err
				}

				ctx = next
			}

			var req Request
			if err := parseRequest(r, &req); err != nil {
				xcontext.Logger(ctx).Debugf("Cannot parse request: %v", err)
				return errorx.New(errorx.BadRequest, "Invalid request")
			}

			resp, err := handler(ctx, &req)
			if err != nil {
				return err
			}

			if err := writeJSON(w, newResponse(resp)); err != nil {
				xcontext.Logger(ctx).Errorf("Cannot write the response: %v", err)
			}

			return nil
		}()

		if err != nil {
			if err := writeJSON(w, newErrorResponse(err)); err != nil {
				xcontext.Logger(ctx).Errorf("Cannot write the response: %v", err)
			}
		}

		for _, closer := range router.closers {
			closer(ctx, r, err)
		}
	})
}

// requestContext carries the router dependencies into the request context.
func (r *Router) requestContext(req *http.Request) context.Context {
	ctx := req.Context()
	ctx = xcontext.WithConfigs(ctx, xcontext.Configs(r.ctx))
	ctx = xcontext.WithLogger(ctx, xcontext.Logger(r.ctx))
	if db := xcontext.DB(r.ctx); db != nil {
		ctx = xcontext.WithDB(ctx, db)
	}

	return ctx
}

func parseRequest(r *http.Request, req any) error {
	switch r.Method {
	case http.MethodGet:
		query := map[string]any{}
		for key, values := range r.URL.Query() {
			if len(values) > 0 {
				query[key] = values[0]
			}
		}

		decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			TagName:          "json",
			WeaklyTypedInput: true,
			Result:           req,
		})
		if err != nil {
			return err
		}

		return decoder.Decode(query)

	default:
		err := json.NewDecoder(r.Body).Decode(req)
		if errors.Is(err, io.EOF) {
			return nil
		}

		return err
	}
}
