package llmclient

import "context"

// FakeClient returns canned responses in order. Test double.
type FakeClient struct {
	Responses []string
	Err       error

	Calls    int
	LastMsgs []Message
}

func (f *FakeClient) Name() string { return "Fake" }

func (f *FakeClient) ChatCompletion(_ context.Context, messages []Message, _ int) (string, error) {
	f.Calls++
	f.LastMsgs = messages
	if f.Err != nil {
		return "", f.Err
	}
	if len(f.Responses) == 0 {
		return "", ErrEmptyResponse
	}
	resp := f.Responses[0]
	if len(f.Responses) > 1 {
		f.Responses = f.Responses[1:]
	}
	return resp, nil
}
