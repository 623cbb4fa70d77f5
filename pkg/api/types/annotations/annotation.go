package annotations

import (
	"strings"
	"time"

	"github.com/yaraku/he-tool/pkg/api/types/bitexts"
	"github.com/yaraku/he-tool/pkg/api/types/evaluations"
	kdb "github.com/yaraku/he-tool/pkg/db"
)

// Detail is an annotation with its evaluation and bitext embedded, so
// that the annotating frontend gets everything it renders in one fetch.
type Detail struct {
	Id          int                `json:"id"`
	UserId      int                `json:"userId"`
	Evaluation  evaluations.Detail `json:"evaluation"`
	Bitext      bitexts.Detail     `json:"bitext"`
	IsAnnotated bool               `json:"isAnnotated"`
	Comment     *string            `json:"comment"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

func ComposeDetail(
	annotation kdb.Annotation, evaluation kdb.Evaluation, bitext kdb.Bitext,
) Detail {
	return Detail{
		Id:          annotation.Id,
		UserId:      annotation.UserId,
		Evaluation:  evaluations.ComposeDetail(evaluation),
		Bitext:      bitexts.ComposeDetail(bitext),
		IsAnnotated: annotation.IsAnnotated,
		Comment:     annotation.Comment,
		CreatedAt:   annotation.CreatedAt,
		UpdatedAt:   annotation.UpdatedAt,
	}
}

// SystemDetail is a per-system translation attached to an annotation.
type SystemDetail struct {
	Id           int       `json:"id"`
	AnnotationId int       `json:"annotationId"`
	SystemId     int       `json:"systemId"`
	Translation  string    `json:"translation"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ComposeSystemDetail turns escaped newline sequences in the stored
// translation back into literal newlines for display.
func ComposeSystemDetail(annotationSystem kdb.AnnotationSystem) SystemDetail {
	return SystemDetail{
		Id:           annotationSystem.Id,
		AnnotationId: annotationSystem.AnnotationId,
		SystemId:     annotationSystem.SystemId,
		Translation:  strings.ReplaceAll(annotationSystem.Translation, `\n`, "\n"),
		CreatedAt:    annotationSystem.CreatedAt,
		UpdatedAt:    annotationSystem.UpdatedAt,
	}
}
