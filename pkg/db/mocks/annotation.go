package mocks

import (
	"context"
	"errors"

	kdb "github.com/yaraku/he-tool/pkg/db"
)

type AnnotationInterface struct {
	Impl struct {
		FindByUser              func(ctx context.Context, userId int) ([]kdb.Annotation, error)
		FindByEvaluation        func(ctx context.Context, evaluationId int) ([]kdb.Annotation, error)
		FindByEvaluationAndUser func(ctx context.Context, evaluationId int, userId int) ([]kdb.Annotation, error)
		Get                     func(ctx context.Context, id int) (kdb.Annotation, error)
		Create                  func(ctx context.Context, spec kdb.AnnotationSpec) (kdb.Annotation, error)
		Update                  func(ctx context.Context, id int, spec kdb.AnnotationSpec) (kdb.Annotation, error)
		Delete                  func(ctx context.Context, id int) error
	}

	Calls struct {
		FindByUser       CallLog[int]
		FindByEvaluation CallLog[int]

		FindByEvaluationAndUser CallLog[struct {
			EvaluationId int
			UserId       int
		}]
		Get    CallLog[int]
		Create CallLog[kdb.AnnotationSpec]
		Update CallLog[struct {
			Id   int
			Spec kdb.AnnotationSpec
		}]
		Delete CallLog[int]
	}
}

func NewAnnotationInterface() *AnnotationInterface {
	return &AnnotationInterface{}
}

var _ kdb.AnnotationInterface = &AnnotationInterface{}

func (m *AnnotationInterface) FindByUser(ctx context.Context, userId int) ([]kdb.Annotation, error) {
	m.Calls.FindByUser = append(m.Calls.FindByUser, userId)
	if m.Impl.FindByUser != nil {
		return m.Impl.FindByUser(ctx, userId)
	}
	panic(errors.New("it should not be called"))
}

func (m *AnnotationInterface) FindByEvaluation(ctx context.Context, evaluationId int) ([]kdb.Annotation, error) {
	m.Calls.FindByEvaluation = append(m.Calls.FindByEvaluation, evaluationId)
	if m.Impl.FindByEvaluation != nil {
		return m.Impl.FindByEvaluation(ctx, evaluationId)
	}
	panic(errors.New("it should not be called"))
}

func (m *AnnotationInterface) FindByEvaluationAndUser(ctx context.Context, evaluationId int, userId int) ([]kdb.Annotation, error) {
	m.Calls.FindByEvaluationAndUser = append(m.Calls.FindByEvaluationAndUser, struct {
		EvaluationId int
		UserId       int
	}{EvaluationId: evaluationId, UserId: userId})
	if m.Impl.FindByEvaluationAndUser != nil {
		return m.Impl.FindByEvaluationAndUser(ctx, evaluationId, userId)
	}
	panic(errors.New("it should not be called"))
}

func (m *AnnotationInterface) Get(ctx context.Context, id int) (kdb.Annotation, error) {
	m.Calls.Get = append(m.Calls.Get, id)
	if m.Impl.Get != nil {
		return m.Impl.Get(ctx, id)
	}
	panic(errors.New("it should not be called"))
}

func (m *AnnotationInterface) Create(ctx context.Context, spec kdb.AnnotationSpec) (kdb.Annotation, error) {
	m.Calls.Create = append(m.Calls.Create, spec)
	if m.Impl.Create != nil {
		return m.Impl.Create(ctx, spec)
	}
	panic(errors.New("it should not be called"))
}

func (m *AnnotationInterface) Update(ctx context.Context, id int, spec kdb.AnnotationSpec) (kdb.Annotation, error) {
	m.Calls.Update = append(m.Calls.Update, struct {
		Id   int
		Spec kdb.AnnotationSpec
	}{Id: id, Spec: spec})
	if m.Impl.Update != nil {
		return m.Impl.Update(ctx, id, spec)
	}
	panic(errors.New("it should not be called"))
}

func (m *AnnotationInterface) Delete(ctx context.Context, id int) error {
	m.Calls.Delete = append(m.Calls.Delete, id)
	if m.Impl.Delete != nil {
		return m.Impl.Delete(ctx, id)
	}
	panic(errors.New("it should not be called"))
}
