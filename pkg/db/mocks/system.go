package mocks

import (
	"context"
	"errors"

	kdb "github.com/yaraku/he-tool/pkg/db"
)

type SystemInterface struct {
	Impl struct {
		Find      func(ctx context.Context) ([]kdb.System, error)
		Get       func(ctx context.Context, id int) (kdb.System, error)
		GetByName func(ctx context.Context, name string) (kdb.System, error)
		Create    func(ctx context.Context, spec kdb.SystemSpec) (kdb.System, error)
		Update    func(ctx context.Context, id int, spec kdb.SystemSpec) (kdb.System, error)
		Delete    func(ctx context.Context, id int) error
	}

	Calls struct {
		Find      CallLog[struct{}]
		Get       CallLog[int]
		GetByName CallLog[string]
		Create    CallLog[kdb.SystemSpec]
		Update    CallLog[struct {
			Id   int
			Spec kdb.SystemSpec
		}]
		Delete CallLog[int]
	}
}

func NewSystemInterface() *SystemInterface {
	return &SystemInterface{}
}

var _ kdb.SystemInterface = &SystemInterface{}

func (m *SystemInterface) Find(ctx context.Context) ([]kdb.System, error) {
	m.Calls.Find = append(m.Calls.Find, struct{}{})
	if m.Impl.Find != nil {
		return m.Impl.Find(ctx)
	}
	panic(errors.New("it should not be called"))
}

func (m *SystemInterface) Get(ctx context.Context, id int) (kdb.System, error) {
	m.Calls.Get = append(m.Calls.Get, id)
	if m.Impl.Get != nil {
		return m.Impl.Get(ctx, id)
	}
	panic(errors.New("it should not be called"))
}

func (m *SystemInterface) GetByName(ctx context.Context, name string) (kdb.System, error) {
	m.Calls.GetByName = append(m.Calls.GetByName, name)
	if m.Impl.GetByName != nil {
		return m.Impl.GetByName(ctx, name)
	}
	panic(errors.New("it should not be called"))
}

func (m *SystemInterface) Create(ctx context.Context, spec kdb.SystemSpec) (kdb.System, error) {
	m.Calls.Create = append(m.Calls.Create, spec)
	if m.Impl.Create != nil {
		return m.Impl.Create(ctx, spec)
	}
	panic(errors.New("it should not be called"))
}

func (m *SystemInterface) Update(ctx context.Context, id int, spec kdb.SystemSpec) (kdb.System, error) {
	m.Calls.Update = append(m.Calls.Update, struct {
		Id   int
		Spec kdb.SystemSpec
	}{Id: id, Spec: spec})
	if m.Impl.Update != nil {
		return m.Impl.Update(ctx, id, spec)
	}
	panic(errors.New("it should not be called"))
}

func (m *SystemInterface) Delete(ctx context.Context, id int) error {
	m.Calls.Delete = append(m.Calls.Delete, id)
	if m.Impl.Delete != nil {
		return m.Impl.Delete(ctx, id)
	}
	panic(errors.New("it should not be called"))
}
