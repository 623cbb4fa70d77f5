package mocks

import (
	"context"
	"errors"

	kdb "github.com/yaraku/he-tool/pkg/db"
)

type UserInterface struct {
	Impl struct {
		Find       func(ctx context.Context) ([]kdb.User, error)
		Get        func(ctx context.Context, id int) (kdb.User, error)
		GetByEmail func(ctx context.Context, email string) (kdb.User, error)
		Create     func(ctx context.Context, spec kdb.UserSpec) (kdb.User, error)
		Update     func(ctx context.Context, id int, spec kdb.UserSpec) (kdb.User, error)
		Delete     func(ctx context.Context, id int) error
	}

	Calls struct {
		Find       CallLog[struct{}]
		Get        CallLog[int]
		GetByEmail CallLog[string]
		Create     CallLog[kdb.UserSpec]
		Update     CallLog[struct {
			Id   int
			Spec kdb.UserSpec
		}]
		Delete CallLog[int]
	}
}

func NewUserInterface() *UserInterface {
	return &UserInterface{}
}

var _ kdb.UserInterface = &UserInterface{}

func (m *UserInterface) Find(ctx context.Context) ([]kdb.User, error) {
	m.Calls.Find = append(m.Calls.Find, struct{}{})
	if m.Impl.Find != nil {
		return m.Impl.Find(ctx)
	}
	panic(errors.New("it should not be called"))
}

func (m *UserInterface) Get(ctx context.Context, id int) (kdb.User, error) {
	m.Calls.Get = append(m.Calls.Get, id)
	if m.Impl.Get != nil {
		return m.Impl.Get(ctx, id)
	}
	panic(errors.New("it should not be called"))
}

func (m *UserInterface) GetByEmail(ctx context.Context, email string) (kdb.User, error) {
	m.Calls.GetByEmail = append(m.Calls.GetByEmail, email)
	if m.Impl.GetByEmail != nil {
		return m.Impl.GetByEmail(ctx, email)
	}
	panic(errors.New("it should not be called"))
}

func (m *UserInterface) Create(ctx context.Context, spec kdb.UserSpec) (kdb.User, error) {
	m.Calls.Create = append(m.Calls.Create, spec)
	if m.Impl.Create != nil {
		return m.Impl.Create(ctx, spec)
	}
	panic(errors.New("it should not be called"))
}

func (m *UserInterface) Update(ctx context.Context, id int, spec kdb.UserSpec) (kdb.User, error) {
	m.Calls.Update = append(m.Calls.Update, struct {
		Id   int
		Spec kdb.UserSpec
	}{Id: id, Spec: spec})
	if m.Impl.Update != nil {
		return m.Impl.Update(ctx, id, spec)
	}
	panic(errors.New("it should not be called"))
}

func (m *UserInterface) Delete(ctx context.Context, id int) error {
	m.Calls.Delete = append(m.Calls.Delete, id)
	if m.Impl.Delete != nil {
		return m.Impl.Delete(ctx, id)
	}
	panic(errors.New("it should not be called"))
}
