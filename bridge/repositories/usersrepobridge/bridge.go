package usersrepobridge

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/OreBoia/my-rest-app/bridge/scaffolding/errs"
	"github.com/OreBoia/my-rest-app/core/repositories/usersrepo"
	"github.com/OreBoia/my-rest-app/infrastructure/web"
	"github.com/OreBoia/my-rest-app/sdk/logger"
)

// bridge provides HTTP handlers for User operations. Store failures never
// leave this layer unconverted: internal detail is logged, the client gets a
// generic coded error.
type bridge struct {
	log            *logger.Logger
	userRepository *usersrepo.Repository
}

func newBridge(log *logger.Logger, userRepository *usersrepo.Repository) *bridge {
	return &bridge{
		log:            log,
		userRepository: userRepository,
	}
}

func (b *bridge) httpList(ctx context.Context, r *http.Request) web.Encoder {
	users, err := b.userRepository.List(ctx)
	if err != nil {
		b.log.ErrorContext(ctx, "list users", "err", err)
		return errs.Newf(errs.Unavailable, "could not retrieve users")
	}

	if users == nil {
		users = []usersrepo.User{}
	}

	return web.NewJSONResponse(users)
}

func (b *bridge) httpCreate(ctx context.Context, r *http.Request) web.Encoder {
	var input CreateUserInput
	if err := web.Decode(r, &input); err != nil {
		return errs.Newf(errs.InvalidArgument, "decode: %s", err)
	}

	user, err := b.userRepository.Create(ctx, input.toNewUser())
	if err != nil {
		b.log.ErrorContext(ctx, "create user", "err", err)
		return errs.Newf(errs.Unavailable, "could not create user")
	}

	return web.NewJSONResponseWithStatus(user, http.StatusCreated)
}

func (b *bridge) httpDelete(ctx context.Context, r *http.Request) web.Encoder {
	id, err := strconv.Atoi(web.Param(r, "user_id"))
	if err != nil {
		return errs.Newf(errs.InvalidArgument, "invalid user id: %s", web.Param(r, "user_id"))
	}

	user, err := b.userRepository.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, usersrepo.ErrNotFound) {
			return errs.Newf(errs.NotFound, "user %d not found", id)
		}
		b.log.ErrorContext(ctx, "delete user", "id", id, "err", err)
		return errs.Newf(errs.Unavailable, "could not delete user")
	}

	return web.NewJSONResponse(user)
}
