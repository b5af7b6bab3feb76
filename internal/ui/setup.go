package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vivek-dodia/fast/internal/config"
)

const setupGuide = `# fast setup

fast needs intervals.icu credentials and an OpenRouter key.

## 1. intervals.icu

Open https://intervals.icu/settings and scroll to **Developer Settings**.
Copy your API key and your athlete id (it looks like ` + "`i12345`" + `).

## 2. OpenRouter

Create a key at https://openrouter.ai/keys. Any chat model works; the
default is ` + "`google/gemini-2.5-flash`" + `.

## 3. Configure

Either export environment variables:

    export INTERVALS_API_KEY=...
    export INTERVALS_ATHLETE_ID=i12345
    export OPENROUTER_API_KEY=...

or write the config file:

    [intervals]
    api_key = "..."
    athlete_id = "i12345"

    [llm]
    model = "google/gemini-2.5-flash"
    api_key = "..."

## 4. Ask something

    fast "how was my last run?"
    fast "analyze my last 5 rides"
    fast "am I ready to race this weekend?"
`

func (a *App) setupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "setup",
		Short: "Show setup instructions",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Println(renderMarkdown(setupGuide))
			fmt.Println(formatProgress("Config file location: " + config.DefaultConfigPath()))
		},
	}
}
