package operator

import (
	"context"
	"fmt"

	"github.com/carson-networks/cashti-console/internal/operator/actions"
)

// Operator is the worker that processes items from the queue.
type Operator struct {
	env   actions.Env
	queue chan ActionItem
}

func NewOperator(env actions.Env, queue chan ActionItem) *Operator {
	return &Operator{
		env:   env,
		queue: queue,
	}
}

// Run listens to the queue and processes items. Exits when the queue is closed.
func (o *Operator) Run() {
	for item := range o.queue {
		o.processItem(item)
	}
}

func (o *Operator) processItem(item ActionItem) {
	if err := item.ctx.Err(); err != nil {
		item.response <- ActionItemResponse{err: err}
		return
	}

	item.response <- ActionItemResponse{err: o.perform(item)}
}

func (o *Operator) perform(item ActionItem) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("action %T panicked: %v", item.action, r)
		}
	}()
	return item.action.Perform(item.ctx, o.env)
}

type ActionItem struct {
	ctx      context.Context
	action   actions.IAction
	response chan ActionItemResponse
}

type ActionItemResponse struct {
	err error
}
