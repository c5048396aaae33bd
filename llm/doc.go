// Package llm is the chat adapter. It speaks the OpenAI-compatible
// chat completions format that Cerebras serves.
//
// # Usage
//
//	chat, err := llm.New(llm.Config{}, credential.NewEnvResolver(), prompt.NewFileLoader(prompt.Config{}))
//	reply, err := chat.Ask(ctx, "T1: ...\nT2: ...")
//
// Ask loads the system prompt file, then sends
//
//	{"model":"llama-3.3-70b","messages":[{"role":"system",...},{"role":"user",...}],"temperature":0.5}
//
// with a bearer token read from CEREBRAS_API_KEY, and returns
// choices[0].message.content exactly as received.
//
// Use Execute for model or temperature overrides and multi-turn history.
package llm
