package e2e

import (
	"context"
	"fmt"
	"sync"

	"github.com/leadflowhq/leadflow/pkg/llm"
)

// LLMScriptEntry defines a single scripted LLM response.
type LLMScriptEntry struct {
	Response *llm.Response // returned as-is
	Error    error         // returned instead of a response
}

// ScriptedLLMClient implements llm.Client with a sequential script. Most
// scenarios assert the LLM was never consulted; the ones that exercise
// the fallback path enqueue entries consumed in order.
type ScriptedLLMClient struct {
	mu       sync.Mutex
	script   []LLMScriptEntry
	index    int
	captured []*llm.Request
}

// NewScriptedLLMClient creates an empty-script client. An unscripted call
// returns llm.ErrUnavailable so the pipeline degrades to fallback text.
func NewScriptedLLMClient() *ScriptedLLMClient {
	return &ScriptedLLMClient{}
}

// Add appends an entry consumed by the next Respond call.
func (c *ScriptedLLMClient) Add(entry LLMScriptEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.script = append(c.script, entry)
}

// AddText is shorthand for a plain text reply.
func (c *ScriptedLLMClient) AddText(message string) {
	c.Add(LLMScriptEntry{Response: &llm.Response{Type: llm.ResponseText, Message: message}})
}

// Respond implements llm.Client.
func (c *ScriptedLLMClient) Respond(_ context.Context, req *llm.Request) (*llm.Response, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.captured = append(c.captured, req)

	if c.index >= len(c.script) {
		return nil, fmt.Errorf("%w: llm script exhausted (call %d)", llm.ErrUnavailable, c.index+1)
	}
	entry := c.script[c.index]
	c.index++
	if entry.Error != nil {
		return nil, entry.Error
	}
	return entry.Response, nil
}

// CallCount returns how many times Respond was invoked.
func (c *ScriptedLLMClient) CallCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.captured)
}

// CapturedRequests returns a snapshot of requests seen so far.
func (c *ScriptedLLMClient) CapturedRequests() []*llm.Request {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*llm.Request, len(c.captured))
	copy(out, c.captured)
	return out
}
