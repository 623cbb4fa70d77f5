package systems

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

func ComposeDetail(system kdb.System) Detail {
	return Detail{
		Id:        system.Id,
		Name:      system.Name,
		CreatedAt: system.CreatedAt,
		UpdatedAt: system.UpdatedAt,
	}
}
