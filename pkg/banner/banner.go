// Package banner prints the stenoengine CLI's startup summary.
package banner

import (
	"fmt"
	"strings"

	"stenoengine/pkg/config"
)

const banner = `
 ____  _____ _   _  ___    _____ _   _  ____ ___ _   _ _____
/ ___||_   _| \ | |/ _ \  | ____| \ | |/ ___|_ _| \ | | ____|
\___ \  | | |  \| | | | | |  _| |  \| | |  _ | ||  \| |  _|
 ___) | | | | |\  | |_| | | |___| |\  | |_| || || |\  | |___
|____/  |_| |_| \_|\___/  |_____|_| \_|\____|___|_| \_|_____|
`

// Print writes the ASCII banner plus the effective configuration the CLI
// resolved at startup.
func Print(eff config.EffectiveConfigResult, version string) {
	fmt.Print(banner)
	fmt.Println("== Config =====================================================")
	if version != "" {
		fmt.Printf("Version:        %s\n", version)
	}
	fmt.Printf("Config sources: %s\n", eff.Source)
	if eff.Config == nil {
		return
	}
	if len(eff.Config.Dictionary.Paths) > 0 {
		fmt.Printf("Dictionaries:   %s\n", strings.Join(eff.Config.Dictionary.Paths, ", "))
	} else {
		fmt.Println("Dictionaries:   (none — translator will only emit raw strokes)")
	}
	fmt.Printf("Undo length:    %d\n", eff.Config.Translator.UndoLength)
	if eff.Config.Orthography.RulesPath != "" {
		fmt.Printf("Orthography:    %s\n", eff.Config.Orthography.RulesPath)
	} else {
		fmt.Println("Orthography:    (rule engine only, no override table)")
	}
	fmt.Printf("Output mode:    %s\n", eff.Config.Output.Mode)
	fmt.Println("\n== Usage ======================================================")
	fmt.Println("stenoengine run --script strokes.txt -- --dict mydict.json")
	fmt.Println("stenoengine dict --dict mydict.json --check")
}
