package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	apierr "github.com/yaraku/he-tool/pkg/api/types/errors"
	apiusers "github.com/yaraku/he-tool/pkg/api/types/users"
	"github.com/yaraku/he-tool/pkg/auth"
	kdb "github.com/yaraku/he-tool/pkg/db"
	"github.com/yaraku/he-tool/pkg/utils/slices"
)

type userRequest struct {
	Email          *string `json:"email"`
	Password       *string `json:"password"`
	NativeLanguage *string `json:"nativeLanguage"`
}

func (r *userRequest) complete() bool {
	return r.Email != nil && r.Password != nil && r.NativeLanguage != nil
}

func FindUserHandler(dbUser kdb.UserInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		users, err := dbUser.Find(c.Request().Context())
		if err != nil {
			return apierr.InternalServerError(err)
		}
		return c.JSON(http.StatusOK, slices.Map(users, apiusers.ComposeDetail))
	}
}

func CreateUserHandler(dbUser kdb.UserInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		req := new(userRequest)
		if err := json.NewDecoder(c.Request().Body).Decode(req); err != nil || !req.complete() {
			return apierr.UnprocessableEntity("Missing required field")
		}

		if _, err := dbUser.GetByEmail(ctx, *req.Email); err == nil {
			return apierr.Conflict("User already exists")
		} else if !errors.Is(err, kdb.ErrMissing) {
			return apierr.InternalServerError(err)
		}

		hash, err := auth.HashPassword(*req.Password)
		if err != nil {
			return apierr.InternalServerError(err)
		}

		user, err := dbUser.Create(ctx, kdb.UserSpec{
			Email:          *req.Email,
			Password:       hash,
			NativeLanguage: *req.NativeLanguage,
		})
		if errors.Is(err, kdb.ErrConflict) {
			return apierr.Conflict("User already exists")
		} else if err != nil {
			return apierr.InternalServerError(err)
		}

		return c.JSON(
			http.StatusCreated,
			apiusers.Envelope{User: apiusers.ComposeDetail(user)},
		)
	}
}

func GetUserHandler(dbUser kdb.UserInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := pathParamId(c, "id")
		if err != nil {
			return err
		}

		user, err := dbUser.Get(c.Request().Context(), id)
		if errors.Is(err, kdb.ErrMissing) {
			return apierr.NotFound("User not found")
		} else if err != nil {
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, apiusers.ComposeDetail(user))
	}
}

func UpdateUserHandler(dbUser kdb.UserInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		id, err := pathParamId(c, "id")
		if err != nil {
			return err
		}

		if _, err := dbUser.Get(ctx, id); errors.Is(err, kdb.ErrMissing) {
			return apierr.NotFound("User not found")
		} else if err != nil {
			return apierr.InternalServerError(err)
		}

		req := new(userRequest)
		if err := json.NewDecoder(c.Request().Body).Decode(req); err != nil || !req.complete() {
			return apierr.UnprocessableEntity("Missing required field")
		}

		if other, err := dbUser.GetByEmail(ctx, *req.Email); err == nil && other.Id != id {
			return apierr.Conflict("User already exists")
		} else if err != nil && !errors.Is(err, kdb.ErrMissing) {
			return apierr.InternalServerError(err)
		}

		hash, err := auth.HashPassword(*req.Password)
		if err != nil {
			return apierr.InternalServerError(err)
		}

		user, err := dbUser.Update(ctx, id, kdb.UserSpec{
			Email:          *req.Email,
			Password:       hash,
			NativeLanguage: *req.NativeLanguage,
		})
		if errors.Is(err, kdb.ErrMissing) {
			return apierr.NotFound("User not found")
		} else if errors.Is(err, kdb.ErrConflict) {
			return apierr.Conflict("User already exists")
		} else if err != nil {
			return apierr.InternalServerError(err)
		}

		return c.JSON(
			http.StatusOK,
			apiusers.Envelope{User: apiusers.ComposeDetail(user)},
		)
	}
}

func DeleteUserHandler(dbUser kdb.UserInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := pathParamId(c, "id")
		if err != nil {
			return err
		}

		if err := dbUser.Delete(c.Request().Context(), id); errors.Is(err, kdb.ErrMissing) {
			return apierr.NotFound("User not found")
		} else if err != nil {
			return apierr.InternalServerError(err)
		}

		return c.NoContent(http.StatusNoContent)
	}
}
