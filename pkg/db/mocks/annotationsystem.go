package mocks

import (
	"context"
	"errors"

	kdb "github.com/yaraku/he-tool/pkg/db"
)

type AnnotationSystemInterface struct {
	Impl struct {
		FindByAnnotation            func(ctx context.Context, annotationId int) ([]kdb.AnnotationSystem, error)
		GetByAnnotationAndSystem    func(ctx context.Context, annotationId int, systemId int) (kdb.AnnotationSystem, error)
		Create                      func(ctx context.Context, spec kdb.AnnotationSystemSpec) (kdb.AnnotationSystem, error)
		UpdateTranslation           func(ctx context.Context, annotationId int, systemId int, translation string) (kdb.AnnotationSystem, error)
		DeleteByAnnotationAndSystem func(ctx context.Context, annotationId int, systemId int) error
	}

	Calls struct {
		FindByAnnotation CallLog[int]

		GetByAnnotationAndSystem CallLog[struct {
			AnnotationId int
			SystemId     int
		}]
		Create CallLog[kdb.AnnotationSystemSpec]

		UpdateTranslation CallLog[struct {
			AnnotationId int
			SystemId     int
			Translation  string
		}]
		DeleteByAnnotationAndSystem CallLog[struct {
			AnnotationId int
			SystemId     int
		}]
	}
}

func NewAnnotationSystemInterface() *AnnotationSystemInterface {
	return &AnnotationSystemInterface{}
}

var _ kdb.AnnotationSystemInterface = &AnnotationSystemInterface{}

func (m *AnnotationSystemInterface) FindByAnnotation(ctx context.Context, annotationId int) ([]kdb.AnnotationSystem, error) {
	m.Calls.FindByAnnotation = append(m.Calls.FindByAnnotation, annotationId)
	if m.Impl.FindByAnnotation != nil {
		return m.Impl.FindByAnnotation(ctx, annotationId)
	}
	panic(errors.New("it should not be called"))
}

func (m *AnnotationSystemInterface) GetByAnnotationAndSystem(ctx context.Context, annotationId int, systemId int) (kdb.AnnotationSystem, error) {
	m.Calls.GetByAnnotationAndSystem = append(m.Calls.GetByAnnotationAndSystem, struct {
		AnnotationId int
		SystemId     int
	}{AnnotationId: annotationId, SystemId: systemId})
	if m.Impl.GetByAnnotationAndSystem != nil {
		return m.Impl.GetByAnnotationAndSystem(ctx, annotationId, systemId)
	}
	panic(errors.New("it should not be called"))
}

func (m *AnnotationSystemInterface) Create(ctx context.Context, spec kdb.AnnotationSystemSpec) (kdb.AnnotationSystem, error) {
	m.Calls.Create = append(m.Calls.Create, spec)
	if m.Impl.Create != nil {
		return m.Impl.Create(ctx, spec)
	}
	panic(errors.New("it should not be called"))
}

func (m *AnnotationSystemInterface) UpdateTranslation(ctx context.Context, annotationId int, systemId int, translation string) (kdb.AnnotationSystem, error) {
	m.Calls.UpdateTranslation = append(m.Calls.UpdateTranslation, struct {
		AnnotationId int
		SystemId     int
		Translation  string
	}{AnnotationId: annotationId, SystemId: systemId, Translation: translation})
	if m.Impl.UpdateTranslation != nil {
		return m.Impl.UpdateTranslation(ctx, annotationId, systemId, translation)
	}
	panic(errors.New("it should not be called"))
}

func (m *AnnotationSystemInterface) DeleteByAnnotationAndSystem(ctx context.Context, annotationId int, systemId int) error {
	m.Calls.DeleteByAnnotationAndSystem = append(m.Calls.DeleteByAnnotationAndSystem, struct {
		AnnotationId int
		SystemId     int
	}{AnnotationId: annotationId, SystemId: systemId})
	if m.Impl.DeleteByAnnotationAndSystem != nil {
		return m.Impl.DeleteByAnnotationAndSystem(ctx, annotationId, systemId)
	}
	panic(errors.New("it should not be called"))
}
