package markings

import (
	"time"

	kdb "github.com/yaraku/he-tool/pkg/db"
)

type Detail struct {
	Id            int       `json:"id"`
	AnnotationId  int       `json:"annotationId"`
	SystemId      int       `json:"systemId"`
	ErrorStart    int       `json:"errorStart"`
	ErrorEnd      int       `json:"errorEnd"`
	ErrorCategory string    `json:"errorCategory"`
	ErrorSeverity string    `json:"errorSeverity"`
	IsSource      bool      `json:"isSource"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func ComposeDetail(marking kdb.Marking) Detail {
	return Detail{
		Id:            marking.Id,
		AnnotationId:  marking.AnnotationId,
		SystemId:      marking.SystemId,
		ErrorStart:    marking.ErrorStart,
		ErrorEnd:      marking.ErrorEnd,
		ErrorCategory: marking.ErrorCategory,
		ErrorSeverity: marking.ErrorSeverity,
		IsSource:      marking.IsSource,
		CreatedAt:     marking.CreatedAt,
		UpdatedAt:     marking.UpdatedAt,
	}
}
