package documents

import (
	"time"

	kdb "github.com/yaraku/he-tool/pkg/db"
)

type Detail struct {
	Id        int       `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func ComposeDetail(document kdb.Document) Detail {
	return Detail{
		Id:        document.Id,
		Name:      document.Name,
		CreatedAt: document.CreatedAt,
		UpdatedAt: document.UpdatedAt,
	}
}
