package domain

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"

	"github.com/fatih/structs"
	"github.com/questx-lab/questlog/internal/entity"
	"github.com/questx-lab/questlog/internal/model"
	"github.com/questx-lab/questlog/internal/repository"
	"github.com/questx-lab/questlog/pkg/enum"
	"github.com/questx-lab/questlog/pkg/errorx"
	"github.com/questx-lab/questlog/pkg/idutil"
	"github.com/questx-lab/questlog/pkg/pubsub"
	"github.com/questx-lab/questlog/pkg/xcontext"
	"golang.org/x/exp/slices"
)

const (
	SettingAvailableQuests           = "availableQuests"
	SettingAllowPlayersDrag          = "allowPlayersDrag"
	SettingAllowPlayersCreate        = "allowPlayersCreate"
	SettingAllowPlayersAccept        = "allowPlayersAccept"
	SettingCountHidden               = "countHidden"
	SettingDynamicBookmarkBackground = "dynamicBookmarkBackground"
	SettingNavStyle                  = "navStyle"
	SettingShowTasks                 = "showTasks"
	SettingDefaultPermission         = "defaultPermission"
	SettingHideFromPlayers           = "hideFQLFromPlayers"
	SettingNotifyRewardDrop          = "notifyRewardDrop"
	SettingShowFolder                = "showFolder"
	SettingEnableQuestTracker        = "enableQuestTracker"
	SettingQuestTrackerBackground    = "questTrackerBackground"
	SettingQuestTrackerTasks         = "questTrackerTasks"
)

type settingDefinition struct {
	name    string
	scope   entity.SettingScope
	kind    entity.SettingType
	choices []string

	// rerenderAll is set for settings that change the content of quest views, not only the
	// quest log window.
	rerenderAll bool
}

var settingDefinitions = []settingDefinition{
	{name: SettingAvailableQuests, scope: entity.SettingScopeWorld, kind: entity.SettingTypeBool},
	{name: SettingAllowPlayersDrag, scope: entity.SettingScopeWorld, kind: entity.SettingTypeBool, rerenderAll: true},
	{name: SettingAllowPlayersCreate, scope: entity.SettingScopeWorld, kind: entity.SettingTypeBool},
	{name: SettingAllowPlayersAccept, scope: entity.SettingScopeWorld, kind: entity.SettingTypeBool},
	{name: SettingCountHidden, scope: entity.SettingScopeWorld, kind: entity.SettingTypeBool, rerenderAll: true},
	{name: SettingDynamicBookmarkBackground, scope: entity.SettingScopeWorld, kind: entity.SettingTypeBool},
	{
		name:    SettingNavStyle,
		scope:   entity.SettingScopeClient,
		kind:    entity.SettingTypeString,
		choices: []string{"bookmarks", "classic"},
	},
	{
		name:        SettingShowTasks,
		scope:       entity.SettingScopeWorld,
		kind:        entity.SettingTypeString,
		choices:     []string{"default", "onlyCurrent", "no"},
		rerenderAll: true,
	},
	{
		name:    SettingDefaultPermission,
		scope:   entity.SettingScopeWorld,
		kind:    entity.SettingTypeString,
		choices: []string{"OBSERVER", "NONE", "OWNER"},
	},
	{name: SettingHideFromPlayers, scope: entity.SettingScopeWorld, kind: entity.SettingTypeBool},
	{name: SettingNotifyRewardDrop, scope: entity.SettingScopeWorld, kind: entity.SettingTypeBool},
	{name: SettingShowFolder, scope: entity.SettingScopeWorld, kind: entity.SettingTypeBool},
	{name: SettingEnableQuestTracker, scope: entity.SettingScopeClient, kind: entity.SettingTypeBool},
	{name: SettingQuestTrackerBackground, scope: entity.SettingScopeClient, kind: entity.SettingTypeBool},
	{name: SettingQuestTrackerTasks, scope: entity.SettingScopeClient, kind: entity.SettingTypeBool},
}

func findSettingDefinition(name string) (settingDefinition, bool) {
	idx := slices.IndexFunc(settingDefinitions, func(d settingDefinition) bool {
		return d.name == name
	})
	if idx < 0 {
		return settingDefinition{}, false
	}

	return settingDefinitions[idx], true
}

type SettingDomain interface {
	Get(context.Context, *model.GetSettingRequest) (*model.GetSettingResponse, error)
	GetList(context.Context, *model.GetListSettingRequest) (*model.GetListSettingResponse, error)
	Update(context.Context, *model.UpdateSettingRequest) (*model.UpdateSettingResponse, error)
	ViewConfig(context.Context) model.ViewConfig
	Bool(ctx context.Context, name string) bool
	DefaultPermission(context.Context) entity.PermissionLevel
}

type settingDomain struct {
	settingRepo repository.SettingRepository
	publisher   pubsub.Publisher
}

func NewSettingDomain(
	settingRepo repository.SettingRepository,
	publisher pubsub.Publisher,
) SettingDomain {
	return &settingDomain{
		settingRepo: settingRepo,
		publisher:   publisher,
	}
}

func (d *settingDomain) Get(
	ctx context.Context, req *model.GetSettingRequest,
) (*model.GetSettingResponse, error) {
	def, ok := findSettingDefinition(req.Name)
	if !ok {
		return nil, errorx.New(errorx.NotFound, "Not found setting %s", req.Name)
	}

	resp := model.GetSettingResponse(d.setting(ctx, def))
	return &resp, nil
}

func (d *settingDomain) GetList(
	ctx context.Context, req *model.GetListSettingRequest,
) (*model.GetListSettingResponse, error) {
	settings := []model.Setting{}
	for _, def := range settingDefinitions {
		settings = append(settings, d.setting(ctx, def))
	}

	return &model.GetListSettingResponse{Settings: settings}, nil
}

func (d *settingDomain) Update(
	ctx context.Context, req *model.UpdateSettingRequest,
) (*model.UpdateSettingResponse, error) {
	def, ok := findSettingDefinition(req.Name)
	if !ok {
		return nil, errorx.New(errorx.NotFound, "Not found setting %s", req.Name)
	}

	value, err := validateSettingValue(def, req.Value)
	if err != nil {
		return nil, err
	}

	viewer := xcontext.Viewer(ctx)
	if viewer.UserID == "" {
		return nil, errorx.New(errorx.Unauthenticated, "Require an access token")
	}

	if def.scope == entity.SettingScopeWorld && !viewer.IsGM {
		return nil, errorx.New(errorx.PermissionDenied, "Only GM can change %s", def.name)
	}

	if err := d.settingRepo.Set(ctx, settingStorageScope(ctx, def.scope), def.name, value); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot store setting %s: %v", def.name, err)
		return nil, errorx.Unknown
	}

	event := model.SettingChangedEvent{
		ID:          idutil.NextID(),
		Name:        def.name,
		Value:       value,
		ChangedBy:   viewer.UserID,
		RerenderAll: def.rerenderAll,
	}

	b, err := json.Marshal(event)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot marshal setting event: %v", err)
		return nil, errorx.Unknown
	}

	err = d.publisher.Publish(ctx, model.SettingChangedTopic, &pubsub.Pack{
		Key: []byte(strconv.FormatInt(event.ID, 10)),
		Msg: b,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot publish setting event: %v", err)
		return nil, errorx.Unknown
	}

	return &model.UpdateSettingResponse{}, nil
}

func (d *settingDomain) ViewConfig(ctx context.Context) model.ViewConfig {
	cfg := xcontext.Configs(ctx)
	showTasks, _ := d.value(ctx, mustSettingDefinition(SettingShowTasks)).(string)

	return model.ViewConfig{
		AllowPlayersDrag: d.Bool(ctx, SettingAllowPlayersDrag),
		CountHidden:      d.Bool(ctx, SettingCountHidden),
		ShowTasks:        showTasks,
		Locale:           cfg.View.Locale,
		Concurrency:      cfg.View.Concurrency,
	}
}

func (d *settingDomain) Bool(ctx context.Context, name string) bool {
	def, ok := findSettingDefinition(name)
	if !ok || def.kind != entity.SettingTypeBool {
		return false
	}

	b, _ := d.value(ctx, def).(bool)
	return b
}

// DefaultPermission is the permission given to players on quests created without one.
func (d *settingDomain) DefaultPermission(ctx context.Context) entity.PermissionLevel {
	v, _ := d.value(ctx, mustSettingDefinition(SettingDefaultPermission)).(string)
	level, err := enum.ToEnum[entity.PermissionLevel](v)
	if err != nil {
		return entity.PermissionObserver
	}

	return level
}

func (d *settingDomain) setting(ctx context.Context, def settingDefinition) model.Setting {
	return model.Setting{
		Name:    def.name,
		Scope:   string(def.scope),
		Type:    string(def.kind),
		Value:   d.value(ctx, def),
		Default: settingDefault(ctx, def),
		Choices: def.choices,
	}
}

// value returns the stored value of the setting, or its default when nothing valid is stored.
func (d *settingDomain) value(ctx context.Context, def settingDefinition) any {
	stored, err := d.settingRepo.Get(ctx, settingStorageScope(ctx, def.scope), def.name)
	if err != nil {
		if !errors.Is(err, repository.ErrSettingNotStored) {
			xcontext.Logger(ctx).Warnf("Cannot get setting %s: %v", def.name, err)
		}

		return settingDefault(ctx, def)
	}

	value, err := validateSettingValue(def, stored)
	if err != nil {
		xcontext.Logger(ctx).Warnf("Ignore invalid stored setting %s: %v", def.name, err)
		return settingDefault(ctx, def)
	}

	return value
}

func settingDefault(ctx context.Context, def settingDefinition) any {
	return structs.Map(xcontext.Configs(ctx).QuestLog)[def.name]
}

// settingStorageScope separates client settings per user.
func settingStorageScope(ctx context.Context, scope entity.SettingScope) string {
	if scope == entity.SettingScopeClient {
		return string(scope) + ":" + xcontext.RequestUserID(ctx)
	}

	return string(scope)
}

func validateSettingValue(def settingDefinition, value any) (any, error) {
	switch def.kind {
	case entity.SettingTypeBool:
		b, ok := value.(bool)
		if !ok {
			return nil, errorx.New(errorx.BadRequest, "Setting %s requires a boolean", def.name)
		}

		return b, nil

	case entity.SettingTypeString:
		s, ok := value.(string)
		if !ok {
			return nil, errorx.New(errorx.BadRequest, "Setting %s requires a string", def.name)
		}

		if len(def.choices) > 0 && !slices.Contains(def.choices, s) {
			return nil, errorx.New(errorx.BadRequest, "Invalid value %s of setting %s", s, def.name)
		}

		return s, nil

	default:
		return nil, errorx.New(errorx.BadRequest, "Unsupported setting type %s", def.kind)
	}
}

func mustSettingDefinition(name string) settingDefinition {
	def, ok := findSettingDefinition(name)
	if !ok {
		panic("unknown setting " + name)
	}

	return def
}
