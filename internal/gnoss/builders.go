package gnoss

import (
	"github.com/google/uuid"

	"github.com/joshuarp/gnoss-api-wrapper/internal/domain"
	"github.com/joshuarp/gnoss-api-wrapper/internal/domain/vo"
)

// LoadContext carries the per-call values a builder cannot read from the
// resource itself.
type LoadContext struct {
	Community   string
	CategoryIDs []uuid.UUID
	LoadID      string
	EndOfLoad   bool
}

func BuildComplexResourceParams(resource domain.ComplexOntologyResource, lc LoadContext) vo.LoadResourceParams {
	params := vo.LoadResourceParams{
		ResourceID:              resource.ID,
		CommunityShortName:      lc.Community,
		Title:                   resource.Title,
		Description:             resource.Description,
		Tags:                    resource.Tags,
		Categories:              mergeCategoryIDs(resource.CategoryIDs, lc.CategoryIDs),
		ResourceType:            vo.ResourceTypeOntology,
		ResourceURL:             resource.OntologyURL,
		ResourceFile:            resource.RDFFile,
		ResourceAttachedFiles:   attachedFiles(resource.AttachedFiles),
		CreatorIsAuthor:         resource.CreatorIsAuthor,
		Authors:                 resource.Author,
		AutoTagsTitleText:       resource.AutoTagsTitle,
		AutoTagsDescriptionText: resource.AutoTagsDescription,
		CreateScreenshot:        resource.MustGenerateScreenshot,
		URLScreenshot:           resource.ScreenshotURL,
		PredicateScreenshot:     resource.ScreenshotPredicate,
		ScreenshotSizes:         resource.ScreenshotSizes,
		EndOfLoad:               lc.EndOfLoad,
		CreationDate:            resource.CreationDate,
		PublisherEmail:          resource.PublisherEmail,
		PublishHome:             resource.PublishInHome,
		LoadID:                  lc.LoadID,
		MainImage:               resource.MainImage,
		Visibility:              int16(resource.Visibility),
		EditorsList:             resource.Editors,
		ReadersList:             resource.Readers,
		CreateVersion:           resource.CreateVersion,
	}
	return params
}

func BuildBasicResourceParams(resource domain.BasicOntologyResource, lc LoadContext) vo.LoadResourceParams {
	return vo.LoadResourceParams{
		ResourceID:              resource.ID,
		CommunityShortName:      lc.Community,
		Title:                   resource.Title,
		Description:             resource.Description,
		Tags:                    resource.Tags,
		Categories:              mergeCategoryIDs(resource.CategoryIDs, lc.CategoryIDs),
		ResourceType:            resource.ResourceType,
		ResourceURL:             resource.DownloadURL,
		ResourceFile:            resource.AttachedFile,
		CreatorIsAuthor:         resource.CreatorIsAuthor,
		Authors:                 resource.Author,
		AutoTagsTitleText:       resource.AutoTagsTitle,
		AutoTagsDescriptionText: resource.AutoTagsDescription,
		CreateScreenshot:        resource.GenerateSnapshot,
		URLScreenshot:           resource.DownloadURL,
		ScreenshotSizes:         resource.SnapshotSizes,
		EndOfLoad:               lc.EndOfLoad,
		CreationDate:            resource.CreationDate,
		PublishHome:             resource.PublishInHome,
		LoadID:                  lc.LoadID,
		Visibility:              int16(resource.Visibility),
		EditorsList:             resource.Editors,
		ReadersList:             resource.Readers,
	}
}

// GnossProperty maps the title and description flags of a triple edit. Title
// wins when both are set.
func GnossProperty(title, description bool) vo.GnossResourceProperty {
	switch {
	case title:
		return vo.GnossPropertyTitle
	case description:
		return vo.GnossPropertyDescription
	default:
		return vo.GnossPropertyNone
	}
}

func IncludeTriples(triples []domain.TriplesToInclude) []vo.ModifyResourceTriple {
	out := make([]vo.ModifyResourceTriple, 0, len(triples))
	for _, t := range triples {
		out = append(out, vo.ModifyResourceTriple{
			Predicate:     t.Predicate,
			NewObject:     t.NewValue,
			GnossProperty: GnossProperty(t.Title, t.Description),
		})
	}
	return out
}

func RemovalTriples(triples []domain.RemoveTriples) []vo.ModifyResourceTriple {
	out := make([]vo.ModifyResourceTriple, 0, len(triples))
	for _, t := range triples {
		out = append(out, vo.ModifyResourceTriple{
			OldObject:     t.Value,
			Predicate:     t.Predicate,
			GnossProperty: GnossProperty(t.Title, t.Description),
		})
	}
	return out
}

func ModificationTriples(triples []domain.TriplesToModify) []vo.ModifyResourceTriple {
	out := make([]vo.ModifyResourceTriple, 0, len(triples))
	for _, t := range triples {
		out = append(out, vo.ModifyResourceTriple{
			OldObject:     t.OldValue,
			Predicate:     t.Predicate,
			NewObject:     t.NewValue,
			GnossProperty: GnossProperty(t.Title, t.Description),
		})
	}
	return out
}

func BuildTripleListParams(resourceID uuid.UUID, triples []vo.ModifyResourceTriple, publishHome bool, lc LoadContext) vo.ModifyResourceTripleListParams {
	return vo.ModifyResourceTripleListParams{
		ResourceTriples:    triples,
		ChargeID:           lc.LoadID,
		ResourceID:         resourceID,
		CommunityShortName: lc.Community,
		PublishHome:        publishHome,
		EndOfLoad:          lc.EndOfLoad,
	}
}

func attachedFiles(files []domain.AttachedFile) []vo.SemanticAttachedResource {
	if len(files) == 0 {
		return nil
	}

	out := make([]vo.SemanticAttachedResource, 0, len(files))
	for _, f := range files {
		out = append(out, vo.SemanticAttachedResource{
			FileRDFProperty:  f.Property,
			FilePropertyType: int16(f.Type),
			RDFAttachedFile:  f.Content,
			DeleteFile:       f.Content == nil,
		})
	}
	return out
}

// mergeCategoryIDs keeps first-seen order and drops duplicates.
func mergeCategoryIDs(lists ...[]uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{})
	var out []uuid.UUID
	for _, list := range lists {
		for _, id := range list {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}
	return out
}
