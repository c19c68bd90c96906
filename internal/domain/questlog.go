package domain

import (
	"context"
	"errors"

	"github.com/questx-lab/questlog/internal/common"
	"github.com/questx-lab/questlog/internal/domain/giver"
	"github.com/questx-lab/questlog/internal/domain/questview"
	"github.com/questx-lab/questlog/internal/entity"
	"github.com/questx-lab/questlog/internal/model"
	"github.com/questx-lab/questlog/internal/repository"
	"github.com/questx-lab/questlog/pkg/enum"
	"github.com/questx-lab/questlog/pkg/errorx"
	"github.com/questx-lab/questlog/pkg/xcontext"
	"gorm.io/gorm"
)

type QuestLogDomain interface {
	CreateQuest(context.Context, *entity.Quest) error
	GetQuestView(context.Context, *model.GetQuestViewRequest) (*model.GetQuestViewResponse, error)
	GetSortedQuestViews(context.Context, *model.GetSortedQuestViewsRequest) (*model.GetSortedQuestViewsResponse, error)
}

type questLogDomain struct {
	questRepo     repository.QuestRepository
	settingDomain SettingDomain
	giverResolver *giver.Resolver
	enricher      *common.HTMLEnricher
}

func NewQuestLogDomain(
	questRepo repository.QuestRepository,
	documentRepo repository.DocumentRepository,
	settingDomain SettingDomain,
) QuestLogDomain {
	return &questLogDomain{
		questRepo:     questRepo,
		settingDomain: settingDomain,
		giverResolver: giver.NewResolver(documentRepo),
		enricher:      common.NewHTMLEnricher(),
	}
}

func (d *questLogDomain) builder(cfg model.ViewConfig) *questview.Builder {
	return questview.NewBuilder(
		d.questRepo,
		d.giverResolver,
		d.enricher,
		common.NewMessageLocalizer(cfg.Locale),
	)
}

// CreateQuest stores a new quest. A quest without a default permission gets the one of the
// defaultPermission setting.
func (d *questLogDomain) CreateQuest(ctx context.Context, quest *entity.Quest) error {
	if quest.DefaultPermission == "" {
		quest.DefaultPermission = d.settingDomain.DefaultPermission(ctx)
	}

	if err := d.questRepo.Create(ctx, quest); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create quest %s: %v", quest.ID, err)
		return errorx.Unknown
	}

	return nil
}

func (d *questLogDomain) GetQuestView(
	ctx context.Context, req *model.GetQuestViewRequest,
) (*model.GetQuestViewResponse, error) {
	if req.ID == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty id")
	}

	quest, err := d.questRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found quest")
		}

		xcontext.Logger(ctx).Errorf("Cannot get quest: %v", err)
		return nil, errorx.Unknown
	}

	viewer := xcontext.Viewer(ctx)
	if !quest.IsObservable(viewer) {
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	cfg := d.settingDomain.ViewConfig(ctx)
	view, err := d.builder(cfg).Build(ctx, quest, viewer, cfg)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot build quest view: %v", err)
		return nil, errorx.Unknown
	}

	return &model.GetQuestViewResponse{Quest: view}, nil
}

func (d *questLogDomain) GetSortedQuestViews(
	ctx context.Context, req *model.GetSortedQuestViewsRequest,
) (*model.GetSortedQuestViewsResponse, error) {
	viewer := xcontext.Viewer(ctx)
	if !viewer.IsGM && d.settingDomain.Bool(ctx, SettingHideFromPlayers) {
		return nil, errorx.New(errorx.PermissionDenied, "Quest log is hidden from players")
	}

	quests, err := d.questRepo.GetList(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get quest list: %v", err)
		return nil, errorx.Unknown
	}

	showAvailable := d.settingDomain.Bool(ctx, SettingAvailableQuests)
	sorted := model.SortedQuests[*entity.Quest]{}
	for _, status := range enum.Values[entity.QuestStatusType]() {
		if status == entity.QuestAvailable && !showAvailable {
			continue
		}

		sorted[string(status)] = []*entity.Quest{}
	}

	for i := range quests {
		quest := &quests[i]
		if !quest.IsObservable(viewer) {
			continue
		}

		group, ok := sorted[string(quest.Status)]
		if !ok {
			continue
		}

		sorted[string(quest.Status)] = append(group, quest)
	}

	cfg := d.settingDomain.ViewConfig(ctx)
	views, err := d.builder(cfg).BuildSorted(ctx, sorted, viewer, cfg)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot build quest views: %v", err)
		return nil, errorx.Unknown
	}

	return &model.GetSortedQuestViewsResponse{Quests: views}, nil
}
