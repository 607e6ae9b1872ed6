package version

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"runtime/debug"
	"strconv"
	"strings"
	"time"
)

// Valores padrão (sobrescritos por ldflags ou por build info)
var (
	Version   = "0.0.0-dev"
	Commit    = ""
	BuildTime = ""
)

// ReleasesURL aponta para a última release publicada.
var ReleasesURL = "https://api.github.com/repos/diillson/bizcase-simulator-go/releases/latest"

// InstallHint é exibido junto do aviso de nova versão.
const InstallHint = "go install github.com/diillson/bizcase-simulator-go/cmd/bizcase@latest"

func init() {
	fillFromBuildInfo()
}

// fillFromBuildInfo usa as configurações vcs.* embutidas pelo Go quando ldflags
// não definiu uma versão.
func fillFromBuildInfo() {
	if Version != "" && Version != "0.0.0-dev" {
		return
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok || bi == nil {
		return
	}

	settings := make(map[string]string, len(bi.Settings))
	for _, s := range bi.Settings {
		settings[s.Key] = s.Value
	}

	if rev := settings["vcs.revision"]; Commit == "" && len(rev) >= 7 {
		Commit = rev[:7]
	}

	if ts, err := time.Parse(time.RFC3339, settings["vcs.time"]); err == nil && BuildTime == "" {
		BuildTime = ts.UTC().Format("2006-01-02T15:04:05Z")
	}

	if tag := strings.TrimPrefix(settings["vcs.tag"], "v"); tag != "" {
		Version = tag
		if strings.EqualFold(settings["vcs.modified"], "true") {
			Version += "-dirty"
		}
	}
}

// FormatVersion retorna a versão com commit e data de build, ex.:
// "1.2.3 (commit: abc1234, built at: 2025-10-23T10:20:30Z)".
func FormatVersion() string {
	ver := Version
	if ver == "" {
		ver = "0.0.0-dev"
	}

	switch {
	case Commit == "" && BuildTime == "":
		return fmt.Sprintf("%s (development)", ver)
	case Commit == "":
		return fmt.Sprintf("%s (built at: %s)", ver, BuildTime)
	case BuildTime == "":
		return fmt.Sprintf("%s (commit: %s)", ver, Commit)
	default:
		return fmt.Sprintf("%s (commit: %s, built at: %s)", ver, Commit, BuildTime)
	}
}

// LatestRelease consulta ReleasesURL e informa se existe versão mais nova que current.
// Versões de desenvolvimento nunca são verificadas.
func LatestRelease(ctx context.Context, client *http.Client, current string) (string, bool, error) {
	if strings.HasSuffix(current, "-dev") || strings.HasSuffix(current, "-dirty") {
		return "", false, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ReleasesURL, nil)
	if err != nil {
		return "", false, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", false, fmt.Errorf("release lookup returned %s", resp.Status)
	}

	var release struct {
		TagName string `json:"tag_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return "", false, err
	}

	latest := strings.TrimPrefix(release.TagName, "v")
	return latest, compareVersions(latest, current) > 0, nil
}

// compareVersions compara "x.y.z" numericamente; partes não numéricas valem 0.
func compareVersions(a, b string) int {
	pa := strings.Split(strings.SplitN(a, "-", 2)[0], ".")
	pb := strings.Split(strings.SplitN(b, "-", 2)[0], ".")
	for i := 0; i < len(pa) || i < len(pb); i++ {
		x, y := part(pa, i), part(pb, i)
		if x != y {
			if x > y {
				return 1
			}
			return -1
		}
	}
	return 0
}

func part(parts []string, i int) int {
	if i >= len(parts) {
		return 0
	}
	n, _ := strconv.Atoi(parts[i])
	return n
}
