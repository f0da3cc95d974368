package bookmark

import (
	"articlehub/internal/domain/entity"
	"articlehub/internal/handler/http/article"
)

type CollectionDTO struct {
	ID   int64  `json:"id" example:"3"`
	Name string `json:"name" example:"Read later"`
}

// CollectionDetail is a collection with the articles linked into it.
type CollectionDetail struct {
	Collection CollectionDTO `json:"collection"`
	Articles   []article.DTO `json:"articles"`
}

type CollectionRequest struct {
	Name string `json:"name" example:"Read later"`
}

type LinkRequest struct {
	ArticleID int64 `json:"article_id" example:"42"`
}

type LinkResponse struct {
	ArticleID    int64 `json:"article_id"`
	CollectionID int64 `json:"collection_id"`
}

func ToDTO(c *entity.BookmarkCollection) CollectionDTO {
	return CollectionDTO{ID: c.ID, Name: c.Name}
}

// ToDTOs never returns nil so empty lists encode as [].
func ToDTOs(cols []*entity.BookmarkCollection) []CollectionDTO {
	out := make([]CollectionDTO, 0, len(cols))
	for _, c := range cols {
		out = append(out, ToDTO(c))
	}
	return out
}
