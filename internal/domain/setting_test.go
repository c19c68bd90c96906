package domain

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/questx-lab/questlog/internal/model"
	"github.com/questx-lab/questlog/internal/repository"
	"github.com/questx-lab/questlog/pkg/errorx"
	"github.com/questx-lab/questlog/pkg/pubsub"
	"github.com/questx-lab/questlog/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func newTestSettingDomain() (SettingDomain, *testutil.MockRedisClient, *testutil.MockPublisher) {
	redisClient := testutil.NewMockRedisClient()
	publisher := &testutil.MockPublisher{}
	return NewSettingDomain(repository.NewSettingRepository(redisClient), publisher), redisClient, publisher
}

func Test_settingDomain_Get(t *testing.T) {
	settingDomain, _, _ := newTestSettingDomain()

	tests := []struct {
		name    string
		req     *model.GetSettingRequest
		want    *model.GetSettingResponse
		wantErr error
	}{
		{
			name: "bool default",
			req:  &model.GetSettingRequest{Name: SettingCountHidden},
			want: &model.GetSettingResponse{
				Name:    SettingCountHidden,
				Scope:   "world",
				Type:    "bool",
				Value:   true,
				Default: true,
			},
		},
		{
			name: "string default with choices",
			req:  &model.GetSettingRequest{Name: SettingShowTasks},
			want: &model.GetSettingResponse{
				Name:    SettingShowTasks,
				Scope:   "world",
				Type:    "string",
				Value:   "default",
				Default: "default",
				Choices: []string{"default", "onlyCurrent", "no"},
			},
		},
		{
			name:    "unknown setting",
			req:     &model.GetSettingRequest{Name: "resetQuestTracker"},
			wantErr: errorx.New(errorx.NotFound, "Not found setting resetQuestTracker"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := settingDomain.Get(testutil.MockContextWithViewer(testutil.PlayerUser, false), tt.req)
			if tt.wantErr != nil {
				require.Equal(t, tt.wantErr, err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func Test_settingDomain_GetList(t *testing.T) {
	settingDomain, _, _ := newTestSettingDomain()

	resp, err := settingDomain.GetList(testutil.MockContext(), &model.GetListSettingRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Settings, len(settingDefinitions))

	for _, s := range resp.Settings {
		require.NotNil(t, s.Default, s.Name)
		require.Equal(t, s.Default, s.Value, s.Name)
	}
}

func Test_settingDomain_Update(t *testing.T) {
	tests := []struct {
		name            string
		ctx             context.Context
		req             *model.UpdateSettingRequest
		wantErr         error
		wantRerenderAll bool
	}{
		{
			name:            "gm changes world setting",
			ctx:             testutil.MockContextWithViewer(testutil.GMUser, true),
			req:             &model.UpdateSettingRequest{Name: SettingShowTasks, Value: "onlyCurrent"},
			wantRerenderAll: true,
		},
		{
			name: "player changes client setting",
			ctx:  testutil.MockContextWithViewer(testutil.PlayerUser, false),
			req:  &model.UpdateSettingRequest{Name: SettingNavStyle, Value: "classic"},
		},
		{
			name:    "player changes world setting",
			ctx:     testutil.MockContextWithViewer(testutil.PlayerUser, false),
			req:     &model.UpdateSettingRequest{Name: SettingCountHidden, Value: false},
			wantErr: errorx.New(errorx.PermissionDenied, "Only GM can change countHidden"),
		},
		{
			name:    "anonymous viewer",
			ctx:     testutil.MockContext(),
			req:     &model.UpdateSettingRequest{Name: SettingNavStyle, Value: "classic"},
			wantErr: errorx.New(errorx.Unauthenticated, "Require an access token"),
		},
		{
			name:    "invalid choice",
			ctx:     testutil.MockContextWithViewer(testutil.GMUser, true),
			req:     &model.UpdateSettingRequest{Name: SettingShowTasks, Value: "always"},
			wantErr: errorx.New(errorx.BadRequest, "Invalid value always of setting showTasks"),
		},
		{
			name:    "invalid type",
			ctx:     testutil.MockContextWithViewer(testutil.GMUser, true),
			req:     &model.UpdateSettingRequest{Name: SettingCountHidden, Value: "yes"},
			wantErr: errorx.New(errorx.BadRequest, "Setting countHidden requires a boolean"),
		},
		{
			name:    "unknown setting",
			ctx:     testutil.MockContextWithViewer(testutil.GMUser, true),
			req:     &model.UpdateSettingRequest{Name: "unknown", Value: true},
			wantErr: errorx.New(errorx.NotFound, "Not found setting unknown"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settingDomain, _, publisher := newTestSettingDomain()

			_, err := settingDomain.Update(tt.ctx, tt.req)
			if tt.wantErr != nil {
				require.Equal(t, tt.wantErr, err)
				require.Empty(t, publisher.Published)
				return
			}

			require.NoError(t, err)

			got, err := settingDomain.Get(tt.ctx, &model.GetSettingRequest{Name: tt.req.Name})
			require.NoError(t, err)
			require.Equal(t, tt.req.Value, got.Value)

			require.Len(t, publisher.Published, 1)
			require.Equal(t, model.SettingChangedTopic, publisher.Published[0].Topic)

			var event model.SettingChangedEvent
			require.NoError(t, json.Unmarshal(publisher.Published[0].Pack.Msg, &event))
			require.Equal(t, tt.req.Name, event.Name)
			require.Equal(t, tt.req.Value, event.Value)
			require.Equal(t, tt.wantRerenderAll, event.RerenderAll)
			require.NotZero(t, event.ID)
		})
	}
}

func Test_settingDomain_ClientScopeIsPerUser(t *testing.T) {
	settingDomain, _, _ := newTestSettingDomain()

	ctx1 := testutil.MockContextWithViewer(testutil.PlayerUser, false)
	ctx2 := testutil.MockContextWithViewer(testutil.PlayerUser2, false)

	_, err := settingDomain.Update(ctx1, &model.UpdateSettingRequest{Name: SettingEnableQuestTracker, Value: true})
	require.NoError(t, err)

	require.True(t, settingDomain.Bool(ctx1, SettingEnableQuestTracker))
	require.False(t, settingDomain.Bool(ctx2, SettingEnableQuestTracker))
}

func Test_settingDomain_ViewConfig(t *testing.T) {
	settingDomain, redisClient, _ := newTestSettingDomain()
	gmCtx := testutil.MockContextWithViewer(testutil.GMUser, true)

	cfg := settingDomain.ViewConfig(gmCtx)
	require.Equal(t, model.ViewConfig{
		AllowPlayersDrag: false,
		CountHidden:      true,
		ShowTasks:        "default",
		Locale:           "en",
		Concurrency:      8,
	}, cfg)

	_, err := settingDomain.Update(gmCtx, &model.UpdateSettingRequest{Name: SettingAllowPlayersDrag, Value: true})
	require.NoError(t, err)
	_, err = settingDomain.Update(gmCtx, &model.UpdateSettingRequest{Name: SettingCountHidden, Value: false})
	require.NoError(t, err)

	cfg = settingDomain.ViewConfig(gmCtx)
	require.True(t, cfg.AllowPlayersDrag)
	require.False(t, cfg.CountHidden)

	// Storage failures fall back to the defaults.
	redisClient.Err = errors.New("redis is down")
	cfg = settingDomain.ViewConfig(gmCtx)
	require.False(t, cfg.AllowPlayersDrag)
	require.True(t, cfg.CountHidden)
}

func Test_settingDomain_Update_PublishFailure(t *testing.T) {
	redisClient := testutil.NewMockRedisClient()
	publisher := &testutil.MockPublisher{
		PublishFunc: func(context.Context, string, *pubsub.Pack) error {
			return errors.New("broker is down")
		},
	}
	settingDomain := NewSettingDomain(repository.NewSettingRepository(redisClient), publisher)

	_, err := settingDomain.Update(
		testutil.MockContextWithViewer(testutil.GMUser, true),
		&model.UpdateSettingRequest{Name: SettingShowFolder, Value: true},
	)
	require.Equal(t, errorx.Unknown, err)
}
