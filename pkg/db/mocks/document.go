package mocks

import (
	"context"
	"errors"

	kdb "github.com/yaraku/he-tool/pkg/db"
)

type DocumentInterface struct {
	Impl struct {
		Find   func(ctx context.Context) ([]kdb.Document, error)
		Get    func(ctx context.Context, id int) (kdb.Document, error)
		Create func(ctx context.Context, spec kdb.DocumentSpec) (kdb.Document, error)
		Update func(ctx context.Context, id int, spec kdb.DocumentSpec) (kdb.Document, error)
		Delete func(ctx context.Context, id int) error
	}

	Calls struct {
		Find   CallLog[struct{}]
		Get    CallLog[int]
		Create CallLog[kdb.DocumentSpec]
		Update CallLog[struct {
			Id   int
			Spec kdb.DocumentSpec
		}]
		Delete CallLog[int]
	}
}

func NewDocumentInterface() *DocumentInterface {
	return &DocumentInterface{}
}

var _ kdb.DocumentInterface = &DocumentInterface{}

func (m *DocumentInterface) Find(ctx context.Context) ([]kdb.Document, error) {
	m.Calls.Find = append(m.Calls.Find, struct{}{})
	if m.Impl.Find != nil {
		return m.Impl.Find(ctx)
	}
	panic(errors.New("it should not be called"))
}

func (m *DocumentInterface) Get(ctx context.Context, id int) (kdb.Document, error) {
	m.Calls.Get = append(m.Calls.Get, id)
	if m.Impl.Get != nil {
		return m.Impl.Get(ctx, id)
	}
	panic(errors.New("it should not be called"))
}

func (m *DocumentInterface) Create(ctx context.Context, spec kdb.DocumentSpec) (kdb.Document, error) {
	m.Calls.Create = append(m.Calls.Create, spec)
	if m.Impl.Create != nil {
		return m.Impl.Create(ctx, spec)
	}
	panic(errors.New("it should not be called"))
}

func (m *DocumentInterface) Update(ctx context.Context, id int, spec kdb.DocumentSpec) (kdb.Document, error) {
	m.Calls.Update = append(m.Calls.Update, struct {
		Id   int
		Spec kdb.DocumentSpec
	}{Id: id, Spec: spec})
	if m.Impl.Update != nil {
		return m.Impl.Update(ctx, id, spec)
	}
	panic(errors.New("it should not be called"))
}

func (m *DocumentInterface) Delete(ctx context.Context, id int) error {
	m.Calls.Delete = append(m.Calls.Delete, id)
	if m.Impl.Delete != nil {
		return m.Impl.Delete(ctx, id)
	}
	panic(errors.New("it should not be called"))
}
