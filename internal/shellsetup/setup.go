// Package shellsetup prints the shell wrapper function that turns a
// committed selection into a cd in the calling shell.
package shellsetup

import (
	"fmt"
	"os"
	"path"
	"runtime"
	"strconv"
	"strings"
)

type ParentShellFunc func() string

type Config struct {
	DetectParent ParentShellFunc
}

// PrintSetup writes the wrapper function for shellOverride, or for the
// detected shell when the override is empty.
func PrintSetup(shellOverride string, cfg Config) {
	parent := cfg.DetectParent
	if parent == nil {
		parent = DetectParentShellName
	}

	shell := normalizeShellName(shellOverride)
	if shell == "" {
		shell = detectShell(parent)
	}
	shell = canonicalShellName(shell)

	exe, err := os.Executable()
	if err != nil {
		exe = "seldir"
	}
	quoted := strconv.Quote(exe)

	switch shell {
	case "fish":
		fmt.Printf(`function seldir
    if test (count $argv) -gt 0
        command %s $argv
        return $status
    end

    command %s
    set result_file (test -n "$TMPDIR"; and echo "$TMPDIR/seldir"; or echo "/tmp/seldir")
    if test -f "$result_file" -a ! -L "$result_file" -a -O "$result_file"
        set dest (cat "$result_file" 2>/dev/null)
        if test -d "$dest" 2>/dev/null
            builtin cd "$dest"
        end
    end
end
`, quoted, quoted)
	case "pwsh", "powershell":
		fmt.Printf(`function seldir {
    param([Parameter(ValueFromRemainingArguments=$true)][string[]]$Args)
    if ($Args.Count -gt 0) {
        & %s @Args
        return
    }

    & %s
    $resultFile = Join-Path ([IO.Path]::GetTempPath()) "seldir"
    if (Test-Path $resultFile -PathType Leaf) {
        $dest = Get-Content $resultFile -Raw -ErrorAction SilentlyContinue
        if (-not [string]::IsNullOrEmpty($dest) -and (Test-Path $dest -PathType Container)) {
            Set-Location $dest
        }
    }
}
`, quoted, quoted)
	case "cmd":
		fmt.Printf(`:: Save as seldir.cmd and run "call seldir.cmd" from cmd.exe sessions.
@echo off
%s
if exist "%%TEMP%%\seldir" (
    for /f "usebackq delims=" %%%%d in ("%%TEMP%%\seldir") do (
        if not "%%%%d"=="" cd /d "%%%%d"
    )
)
`, quoted)
	default:
		// bash, zsh, sh, ksh and anything POSIX-ish.
		fmt.Printf(`seldir() {
    if [ "$#" -gt 0 ]; then
        command %s "$@"
        return $?
    fi

    command %s
    result_file="${TMPDIR:-/tmp}/seldir"
    if [ -f "$result_file" ] && [ ! -L "$result_file" ] && [ -O "$result_file" ]; then
        dest=$(cat "$result_file" 2>/dev/null)
        if [ -d "$dest" ] 2>/dev/null; then
            cd "$dest"
        fi
    fi
}
`, quoted, quoted)
	}
}

func detectShell(parent ParentShellFunc) string {
	return detectShellInternal(runtime.GOOS, os.Getenv, parent)
}

func detectShellInternal(goos string, getenv func(string) string, parent ParentShellFunc) string {
	if shell := canonicalShellName(normalizeShellName(getenv("SHELL"))); shell != "" {
		return shell
	}

	if parent != nil {
		if shell := canonicalShellName(normalizeShellName(parent())); shell != "" {
			return shell
		}
	}

	if strings.EqualFold(goos, "windows") {
		if shell := canonicalShellName(normalizeShellName(getenv("COMSPEC"))); shell != "" {
			switch shell {
			case "pwsh", "cmd":
				return shell
			}
		}
		return "pwsh"
	}

	return "bash"
}

func canonicalShellName(name string) string {
	switch name {
	case "powershell":
		return "pwsh"
	default:
		return name
	}
}

func normalizeShellName(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}

	value = extractExecutable(value)
	if value == "" {
		return ""
	}

	value = strings.Trim(value, `"'`)
	value = strings.ReplaceAll(value, "\\", "/")
	base := path.Base(value)
	base = strings.ToLower(base)
	base = strings.TrimSuffix(base, ".exe")
	return strings.TrimSpace(base)
}

func extractExecutable(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}

	if quote := value[0]; quote == '"' || quote == '\'' {
		value = value[1:]
		if idx := strings.IndexByte(value, quote); idx >= 0 {
			return value[:idx]
		}
		return value
	}

	if idx := strings.IndexAny(value, " \t"); idx >= 0 {
		return value[:idx]
	}

	return value
}
