// Package config loads the airelay configuration.
//
// Values come from config.yml, a .env file and the process environment,
// in increasing precedence. Environment variables map onto nested keys by
// splitting on underscores, so TRANSLATION_TARGET_LANG sets
// translation.target_lang.
//
//	cfg, err := config.Load()
//	if err != nil {
//	    return err
//	}
//	chat, err := llm.New(cfg.Chat, credential.NewEnvResolver(), prompt.NewFileLoader(cfg.Prompt))
//
// The .env file is also loaded into the process environment, which is
// where the credential resolver reads API keys from on every call.
package config
