package bitexts

import (
	"time"

	kdb "github.com/yaraku/he-tool/pkg/db"
)

type Detail struct {
	Id         int       `json:"id"`
	DocumentId int       `json:"documentId"`
	Source     string    `json:"source"`
	Target     string    `json:"target"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func ComposeDetail(bitext kdb.Bitext) Detail {
	return Detail{
		Id:         bitext.Id,
		DocumentId: bitext.DocumentId,
		Source:     bitext.Source,
		Target:     bitext.Target,
		CreatedAt:  bitext.CreatedAt,
		UpdatedAt:  bitext.UpdatedAt,
	}
}
