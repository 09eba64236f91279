package tasksrepobridge

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/OreBoia/my-rest-app/bridge/scaffolding/errs"
	"github.com/OreBoia/my-rest-app/core/repositories/tasksrepo"
	"github.com/OreBoia/my-rest-app/infrastructure/web"
	"github.com/OreBoia/my-rest-app/sdk/logger"
)

// bridge provides HTTP handlers for Task operations.
type bridge struct {
	log            *logger.Logger
	taskRepository *tasksrepo.Repository
}

func newBridge(log *logger.Logger, taskRepository *tasksrepo.Repository) *bridge {
	return &bridge{
		log:            log,
		taskRepository: taskRepository,
	}
}

func (b *bridge) httpList(ctx context.Context, r *http.Request) web.Encoder {
	tasks, err := b.taskRepository.List(ctx)
	if err != nil {
		b.log.ErrorContext(ctx, "list tasks", "err", err)
		return errs.Newf(errs.Unavailable, "could not retrieve tasks")
	}

	if tasks == nil {
		tasks = []tasksrepo.Task{}
	}

	return web.NewJSONResponse(tasks)
}

func (b *bridge) httpCreate(ctx context.Context, r *http.Request) web.Encoder {
	var input CreateTaskInput
	if err := web.Decode(r, &input); err != nil {
		return errs.Newf(errs.InvalidArgument, "decode: %s", err)
	}

	task, err := b.taskRepository.Create(ctx, input.toNewTask())
	if err != nil {
		b.log.ErrorContext(ctx, "create task", "err", err)
		return errs.Newf(errs.Unavailable, "could not create task")
	}

	return web.NewJSONResponseWithStatus(task, http.StatusCreated)
}

func (b *bridge) httpToggle(ctx context.Context, r *http.Request) web.Encoder {
	id, err := strconv.Atoi(web.Param(r, "task_id"))
	if err != nil {
		return errs.Newf(errs.InvalidArgument, "invalid task id: %s", web.Param(r, "task_id"))
	}

	task, err := b.taskRepository.Toggle(ctx, id)
	if err != nil {
		if errors.Is(err, tasksrepo.ErrNotFound) {
			return errs.Newf(errs.NotFound, "task %d not found", id)
		}
		b.log.ErrorContext(ctx, "toggle task", "id", id, "err", err)
		return errs.Newf(errs.Unavailable, "could not update task")
	}

	return web.NewJSONResponse(task)
}

func (b *bridge) httpDelete(ctx context.Context, r *http.Request) web.Encoder {
	id, err := strconv.Atoi(web.Param(r, "task_id"))
	if err != nil {
		return errs.Newf(errs.InvalidArgument, "invalid task id: %s", web.Param(r, "task_id"))
	}

	task, err := b.taskRepository.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, tasksrepo.ErrNotFound) {
			return errs.Newf(errs.NotFound, "task %d not found", id)
		}
		b.log.ErrorContext(ctx, "delete task", "id", id, "err", err)
		return errs.Newf(errs.Unavailable, "could not delete task")
	}

	return web.NewJSONResponse(task)
}
