package cli

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/diillson/bizcase-simulator-go/pkg/version"
	"github.com/fatih/color"
	"github.com/pterm/pterm"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner() {
	banner := `
     ____  _                          
    | __ )(_)________ __ _ ___  ___  
    |  _ \| |_  / __/ _' / __|/ _ \ 
    | |_) | |/ / (_| (_| \__ \  __/ 
    |____/|_/___\___\__,_|___/\___| 
    `
	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Println(green(banner))
	fmt.Println(blue(fmt.Sprintf("Bizcase Simulator (v%s)", version.FormatVersion())))
}

// checkLatestVersion avisa quando existe uma release mais nova. Erros são ignorados.
func checkLatestVersion(currentVersion string) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	latest, newer, err := version.LatestRelease(ctx, &http.Client{}, currentVersion)
	if err != nil || !newer {
		return
	}
	pterm.Warning.Println(fmt.Sprintf("A new version of Bizcase Simulator is available: %s", latest))
	pterm.Info.Println("Please update using: " + version.InstallHint)
}
