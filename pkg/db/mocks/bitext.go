package mocks

import (
	"context"
	"errors"

	kdb "github.com/yaraku/he-tool/pkg/db"
)

type BitextInterface struct {
	Impl struct {
		Find           func(ctx context.Context) ([]kdb.Bitext, error)
		FindByDocument func(ctx context.Context, documentId int) ([]kdb.Bitext, error)
		Get            func(ctx context.Context, id int) (kdb.Bitext, error)
		Create         func(ctx context.Context, spec kdb.BitextSpec) (kdb.Bitext, error)
		Update         func(ctx context.Context, id int, spec kdb.BitextSpec) (kdb.Bitext, error)
		Delete         func(ctx context.Context, id int) error
	}

	Calls struct {
		Find           CallLog[struct{}]
		FindByDocument CallLog[int]
		Get            CallLog[int]
		Create         CallLog[kdb.BitextSpec]
		Update         CallLog[struct {
			Id   int
			Spec kdb.BitextSpec
		}]
		Delete CallLog[int]
	}
}

func NewBitextInterface() *BitextInterface {
	return &BitextInterface{}
}

var _ kdb.BitextInterface = &BitextInterface{}

func (m *BitextInterface) Find(ctx context.Context) ([]kdb.Bitext, error) {
	m.Calls.Find = append(m.Calls.Find, struct{}{})
	if m.Impl.Find != nil {
		return m.Impl.Find(ctx)
	}
	panic(errors.New("it should not be called"))
}

func (m *BitextInterface) FindByDocument(ctx context.Context, documentId int) ([]kdb.Bitext, error) {
	m.Calls.FindByDocument = append(m.Calls.FindByDocument, documentId)
	if m.Impl.FindByDocument != nil {
		return m.Impl.FindByDocument(ctx, documentId)
	}
	panic(errors.New("it should not be called"))
}

func (m *BitextInterface) Get(ctx context.Context, id int) (kdb.Bitext, error) {
	m.Calls.Get = append(m.Calls.Get, id)
	if m.Impl.Get != nil {
		return m.Impl.Get(ctx, id)
	}
	panic(errors.New("it should not be called"))
}

func (m *BitextInterface) Create(ctx context.Context, spec kdb.BitextSpec) (kdb.Bitext, error) {
	m.Calls.Create = append(m.Calls.Create, spec)
	if m.Impl.Create != nil {
		return m.Impl.Create(ctx, spec)
	}
	panic(errors.New("it should not be called"))
}

func (m *BitextInterface) Update(ctx context.Context, id int, spec kdb.BitextSpec) (kdb.Bitext, error) {
	m.Calls.Update = append(m.Calls.Update, struct {
		Id   int
		Spec kdb.BitextSpec
	}{Id: id, Spec: spec})
	if m.Impl.Update != nil {
		return m.Impl.Update(ctx, id, spec)
	}
	panic(errors.New("it should not be called"))
}

func (m *BitextInterface) Delete(ctx context.Context, id int) error {
	m.Calls.Delete = append(m.Calls.Delete, id)
	if m.Impl.Delete != nil {
		return m.Impl.Delete(ctx, id)
	}
	panic(errors.New("it should not be called"))
}
