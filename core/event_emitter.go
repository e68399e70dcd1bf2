package chat

import "github.com/koscakluka/transcript-core/core/events"

type eventEmitter func(events.Event)

func noopEventEmitter(events.Event) {}

func newCallbackEventEmitter(opts PromptOptions) eventEmitter {
	if opts.onEvent == nil {
		return noopEventEmitter
	}
	return func(event events.Event) {
		opts.onEvent(event)
	}
}
