package notifier

import "context"

type MockNotifier struct {
	ShowAddedFunc func(ctx context.Context, eventName string) error

	Calls []string
}

func (m *MockNotifier) ShowAdded(ctx context.Context, eventName string) error {
	m.Calls = append(m.Calls, eventName)

	if m.ShowAddedFunc != nil {
		return m.ShowAddedFunc(ctx, eventName)
	}

	return nil
}
