package evaluations

import (
	"time"

	kdb "github.com/yaraku/he-tool/pkg/db"
)

type Detail struct {
	Id         int                `json:"id"`
	Name       string             `json:"name"`
	Type       kdb.EvaluationType `json:"type"`
	IsFinished bool               `json:"isFinished"`
	CreatedAt  time.Time          `json:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt"`
}

func ComposeDetail(evaluation kdb.Evaluation) Detail {
	return Detail{
		Id:         evaluation.Id,
		Name:       evaluation.Name,
		Type:       evaluation.Type,
		IsFinished: evaluation.IsFinished,
		CreatedAt:  evaluation.CreatedAt,
		UpdatedAt:  evaluation.UpdatedAt,
	}
}
