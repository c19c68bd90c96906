package questview

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/questx-lab/questlog/internal/common"
	"github.com/questx-lab/questlog/internal/entity"
	"github.com/questx-lab/questlog/internal/model"
	"github.com/questx-lab/questlog/internal/repository"
	"github.com/questx-lab/questlog/pkg/xcontext"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const (
	// PersonalActorsSeparator is the escaped carriage return templates use between names in a
	// tooltip.
	PersonalActorsSeparator = "&#013;"

	AbstractRewardType = "abstract"

	ShowTasksDefault     = "default"
	ShowTasksOnlyCurrent = "onlyCurrent"

	stateCompleted = "check-square"
	stateFailed    = "minus-square"
	stateDefault   = "square"

	defaultConcurrency = 8

	// Legacy records may still carry this status; such sub-quests are left out of the total.
	legacyHiddenStatus = "hidden"
)

var ErrNilQuest = errors.New("nil quest")

type GiverResolver interface {
	Resolve(ctx context.Context, quest *entity.Quest) *model.GiverView
}

type Enricher interface {
	Enrich(ctx context.Context, raw string) (string, error)
}

type Localizer interface {
	Localize(key string) string
}

type Builder struct {
	questRepo     repository.QuestRepository
	giverResolver GiverResolver
	enricher      Enricher
	localizer     Localizer
}

func NewBuilder(
	questRepo repository.QuestRepository,
	giverResolver GiverResolver,
	enricher Enricher,
	localizer Localizer,
) *Builder {
	return &Builder{
		questRepo:     questRepo,
		giverResolver: giverResolver,
		enricher:      enricher,
		localizer:     localizer,
	}
}

// Build derives the view of quest for viewer. The quest is never modified. Missing parents,
// sub-quests and givers degrade to empty values; an error is only returned for a nil quest or
// when the quest state cannot be copied.
func (b *Builder) Build(
	ctx context.Context,
	quest *entity.Quest,
	viewer model.Viewer,
	cfg model.ViewConfig,
) (*model.QuestView, error) {
	if quest == nil {
		return nil, ErrNilQuest
	}

	data, err := copyQuest(ConvertQuest(quest))
	if err != nil {
		return nil, fmt.Errorf("cannot copy quest %s: %w", quest.ID, err)
	}

	view := &model.QuestView{Quest: data}
	view.ID = quest.ID
	view.IsHidden = quest.Hidden
	view.IsPersonal, view.PersonalActorsLabel = personalActors(cfg.Locale, quest.PersonalActors)
	view.Description = b.enrich(ctx, data.Description)
	view.GiverView = b.giverResolver.Resolve(ctx, quest)
	view.StatusLabel = b.localizer.Localize(common.StatusLabelKeyPrefix + data.Status)

	if data.Parent != nil {
		view.IsSubquest = true
		view.ParentSummary = b.parentSummary(ctx, *data.Parent)
	}

	view.SubquestSummaries = b.subquestSummaries(ctx, data.Subquests, viewer, cfg)
	view.CheckedTaskCount, view.TotalTaskCount = countTasks(data.Tasks, view.SubquestSummaries, cfg.CountHidden)
	view.TaskCountLabel = taskCountLabel(cfg.ShowTasks, view.CheckedTaskCount, view.TotalTaskCount)

	// Task names are player editable, they are never enriched.
	view.TaskViews = make([]model.TaskView, 0, len(data.Tasks))
	for _, t := range data.Tasks {
		view.TaskViews = append(view.TaskViews, model.TaskView{
			Name:      t.Name,
			Completed: t.Completed,
			Hidden:    t.Hidden,
		})
	}

	view.RewardViews = make([]model.RewardView, 0, len(data.Rewards))
	for _, r := range data.Rewards {
		view.RewardViews = append(view.RewardViews, rewardView(ctx, r, viewer, cfg))
	}

	if !viewer.IsGM {
		view.TaskViews = filterVisible(view.TaskViews, func(t model.TaskView) bool { return t.Hidden })
		view.RewardViews = filterVisible(view.RewardViews, func(r model.RewardView) bool { return r.Hidden })
	}

	return view, nil
}

// BuildSorted builds every group of sorted. Keys and the order inside each group are kept. A quest
// whose view cannot be built is logged and left out of its group.
func (b *Builder) BuildSorted(
	ctx context.Context,
	sorted model.SortedQuests[*entity.Quest],
	viewer model.Viewer,
	cfg model.ViewConfig,
) (model.SortedQuestViews, error) {
	limit := cfg.Concurrency
	if limit <= 0 {
		limit = defaultConcurrency
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(limit)

	slots := make(map[string][]*model.QuestView, len(sorted))
	for key, quests := range sorted {
		views := make([]*model.QuestView, len(quests))
		slots[key] = views

		for i, quest := range quests {
			i, quest := i, quest
			eg.Go(func() error {
				view, err := b.Build(egCtx, quest, viewer, cfg)
				if err != nil {
					xcontext.Logger(ctx).Warnf("Cannot build view of a quest in group %s: %v", key, err)
					return nil
				}

				views[i] = view
				return nil
			})
		}
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	result := make(model.SortedQuestViews, len(slots))
	for key, views := range slots {
		built := make([]*model.QuestView, 0, len(views))
		for _, v := range views {
			if v != nil {
				built = append(built, v)
			}
		}

		result[key] = built
	}

	return result, nil
}

func (b *Builder) enrich(ctx context.Context, raw string) string {
	if raw == "" {
		return ""
	}

	enriched, err := b.enricher.Enrich(ctx, raw)
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot enrich quest description: %v", err)
		return html.EscapeString(raw)
	}

	return enriched
}

// getQuest treats every lookup failure as a missing quest.
func (b *Builder) getQuest(ctx context.Context, id string) *entity.Quest {
	quest, err := b.questRepo.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			xcontext.Logger(ctx).Warnf("Cannot get quest %s: %v", id, err)
		}

		return nil
	}

	return quest
}

func (b *Builder) parentSummary(ctx context.Context, parentID string) model.ParentSummary {
	parent := b.getQuest(ctx, parentID)
	if parent == nil {
		return model.ParentSummary{}
	}

	return model.ParentSummary{
		ID:     parentID,
		Giver:  parent.Giver,
		Name:   parent.Name,
		Status: string(parent.Status),
	}
}

func (b *Builder) subquestSummaries(
	ctx context.Context,
	ids []string,
	viewer model.Viewer,
	cfg model.ViewConfig,
) []model.SubquestSummary {
	summaries := []model.SubquestSummary{}
	for _, id := range ids {
		subquest := b.getQuest(ctx, id)
		if subquest == nil || !subquest.IsObservable(viewer) {
			continue
		}

		isPersonal, label := personalActors(cfg.Locale, subquest.PersonalActors)
		summaries = append(summaries, model.SubquestSummary{
			ID:                  id,
			Giver:               subquest.Giver,
			Name:                subquest.Name,
			Status:              string(subquest.Status),
			StateToken:          stateToken(subquest.Status),
			IsHidden:            subquest.Hidden,
			IsPersonal:          isPersonal,
			PersonalActorsLabel: label,
		})
	}

	return summaries
}

func stateToken(status entity.QuestStatusType) string {
	switch status {
	case entity.QuestCompleted:
		return stateCompleted
	case entity.QuestFailed:
		return stateFailed
	default:
		return stateDefault
	}
}

func personalActors(locale string, actors []entity.PersonalActor) (bool, string) {
	if len(actors) == 0 {
		return false, ""
	}

	names := make([]string, 0, len(actors))
	for _, a := range actors {
		names = append(names, a.Name)
	}
	common.SortNames(locale, names)

	return true, strings.Join(names, PersonalActorsSeparator)
}

// countTasks counts completed and total entries. Every summary is observable by construction.
func countTasks(tasks []model.Task, subquests []model.SubquestSummary, countHidden bool) (int, int) {
	checked, total := 0, 0

	if countHidden {
		for _, t := range tasks {
			if t.Completed {
				checked++
			}
		}

		for _, s := range subquests {
			if s.Status == string(entity.QuestCompleted) {
				checked++
			}
		}

		return checked, len(tasks) + len(subquests)
	}

	for _, t := range tasks {
		if t.Hidden {
			continue
		}

		total++
		if t.Completed {
			checked++
		}
	}

	for _, s := range subquests {
		if s.Status == string(entity.QuestCompleted) {
			checked++
		}

		if s.Status != legacyHiddenStatus {
			total++
		}
	}

	return checked, total
}

func taskCountLabel(showTasks string, checked, total int) string {
	switch showTasks {
	case ShowTasksDefault:
		return fmt.Sprintf("(%d/%d)", checked, total)
	case ShowTasksOnlyCurrent:
		return fmt.Sprintf("(%d)", checked)
	default:
		return ""
	}
}

type rewardData struct {
	Name  string `mapstructure:"name"`
	Image string `mapstructure:"img"`
	UUID  string `mapstructure:"uuid"`
}

func rewardView(ctx context.Context, reward model.Reward, viewer model.Viewer, cfg model.ViewConfig) model.RewardView {
	var data rewardData
	if err := mapstructure.Decode(reward.Data, &data); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot decode reward %s data: %v", reward.UUIDVariant, err)
	}

	rewardType := strings.ToLower(reward.Type)
	transferable := rewardType != AbstractRewardType

	view := model.RewardView{
		Name:         data.Name,
		Image:        data.Image,
		Type:         rewardType,
		Hidden:       reward.Hidden,
		Locked:       reward.Locked,
		IsPlayerLink: !viewer.IsGM && !cfg.AllowPlayersDrag && !reward.Locked && transferable,
		Draggable:    (viewer.IsGM || cfg.AllowPlayersDrag) && (viewer.IsGM || !reward.Locked) && transferable,
		UUIDVariant:  reward.UUIDVariant,
	}

	if transferable {
		b, err := json.Marshal(model.RewardTransfer{
			UUID:        data.UUID,
			UUIDVariant: reward.UUIDVariant,
			Name:        data.Name,
		})
		if err == nil {
			transfer := string(b)
			view.Transfer = &transfer
		}
	}

	return view
}

func filterVisible[T any](items []T, isHidden func(T) bool) []T {
	result := make([]T, 0, len(items))
	for _, item := range items {
		if !isHidden(item) {
			result = append(result, item)
		}
	}

	return result
}
