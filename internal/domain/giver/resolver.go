package giver

import (
	"context"
	"errors"

	"github.com/questx-lab/questlog/internal/entity"
	"github.com/questx-lab/questlog/internal/model"
	"github.com/questx-lab/questlog/internal/repository"
	"github.com/questx-lab/questlog/pkg/xcontext"
	"gorm.io/gorm"
)

const TokenImageKind = "token"

// Resolver turns the giver of a quest into a display record.
type Resolver struct {
	documentRepo repository.DocumentRepository
}

func NewResolver(documentRepo repository.DocumentRepository) *Resolver {
	return &Resolver{documentRepo: documentRepo}
}

// Resolve returns nil when the quest has no giver or the referenced document cannot be shown.
func (r *Resolver) Resolve(ctx context.Context, quest *entity.Quest) *model.GiverView {
	switch giver := quest.GiverRef().(type) {
	case entity.AbstractGiver:
		return &model.GiverView{
			Name:          giver.Name,
			Image:         giver.Image,
			HasTokenImage: false,
		}

	case entity.ReferenceGiver:
		return r.ResolveByReference(ctx, giver.UUID, giver.ImageKind)

	default:
		return nil
	}
}

// ResolveByReference looks the document up by its reference. Lookup failures are logged and
// treated as a missing document.
func (r *Resolver) ResolveByReference(ctx context.Context, uuid, imageKind string) *model.GiverView {
	if uuid == "" {
		return nil
	}

	doc, err := r.documentRepo.GetByID(ctx, uuid)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			xcontext.Logger(ctx).Warnf("Cannot resolve giver %s: %v", uuid, err)
		}

		return nil
	}

	switch doc.Kind {
	case entity.ActorDocument:
		hasTokenImage := doc.TokenImage != "" && doc.TokenImage != doc.Image
		image := doc.Image
		if imageKind == TokenImageKind && hasTokenImage {
			image = doc.TokenImage
		}

		return &model.GiverView{
			UUID:          uuid,
			Name:          doc.Name,
			Image:         image,
			HasTokenImage: hasTokenImage,
		}

	case entity.ItemDocument, entity.JournalEntryDocument:
		return &model.GiverView{
			UUID:          uuid,
			Name:          doc.Name,
			Image:         doc.Image,
			HasTokenImage: false,
		}

	default:
		xcontext.Logger(ctx).Debugf("Unsupported giver kind %s of %s", doc.Kind, uuid)
		return nil
	}
}
