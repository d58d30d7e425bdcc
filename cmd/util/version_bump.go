package main

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"golang.org/x/mod/semver"
)

// versionFile holds the release version stamped into the binary at build time.
const versionFile = "version.txt"

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run version_bump.go <bump-type>")
		fmt.Println("Where <bump-type> is one of: patch, minor, major")
		os.Exit(1)
	}

	bumpType := os.Args[1]

	// Safety check: release bumps happen on 'main' only
	currentBranch, err := getCurrentBranch()
	if err != nil {
		fmt.Println("Error determining current branch:", err)
		os.Exit(1)
	}
	if currentBranch != "main" {
		fmt.Printf("Error: Release bumps must be performed on 'main'. Current branch: '%s'\n", currentBranch)
		os.Exit(1)
	}

	data, err := os.ReadFile(versionFile)
	if err != nil {
		fmt.Println("Error reading version from file:", err)
		os.Exit(1)
	}

	newVersion, err := bumpVersion(strings.TrimSpace(string(data)), bumpType)
	if err != nil {
		fmt.Println("Error incrementing version:", err)
		os.Exit(1)
	}

	if err := os.WriteFile(versionFile, []byte(newVersion), 0644); err != nil {
		fmt.Println("Error writing new version to file:", err)
		os.Exit(1)
	}

	// Commit the version change before tagging
	if err := commitVersionFile(versionFile, newVersion); err != nil {
		fmt.Println("Error committing version file:", err)
		os.Exit(1)
	}

	if err := createGitTag(newVersion); err != nil {
		fmt.Println("Error creating Git tag:", err)
		os.Exit(1)
	}
}

// bumpVersion increments the given semantic version string and returns the
// new version, keeping the "v" prefix convention used by release tags.
func bumpVersion(version, bumpType string) (string, error) {
	if !strings.HasPrefix(version, "v") {
		version = "v" + version
	}
	if !semver.IsValid(version) {
		return "", fmt.Errorf("invalid version format: %s", version)
	}

	parts := strings.SplitN(strings.TrimPrefix(semver.Canonical(version), "v"), ".", 3)
	major, _ := strconv.Atoi(parts[0])
	minor, _ := strconv.Atoi(parts[1])
	patch, _ := strconv.Atoi(parts[2])

	switch bumpType {
	case "patch":
		patch++
	case "minor":
		minor++
		patch = 0
	case "major":
		major++
		minor = 0
		patch = 0
	default:
		return "", fmt.Errorf("invalid bump type: %s", bumpType)
	}

	return fmt.Sprintf("v%d.%d.%d", major, minor, patch), nil
}

// createGitTag creates an annotated Git tag for the version and pushes it.
func createGitTag(version string) error {
	cmd := exec.Command("git", "tag", "-a", version, "-m", fmt.Sprintf("Release %s", version))
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return err
	}

	cmd = exec.Command("git", "push", "origin", version)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd.Run()
}

// commitVersionFile commits the version file to git.
func commitVersionFile(filename, version string) error {
	cmd := exec.Command("git", "add", filename)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("git add failed: %w", err)
	}

	cmd = exec.Command("git", "commit", "-m", fmt.Sprintf("Bump version to %s", version))
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// getCurrentBranch returns the name of the current git branch.
func getCurrentBranch() (string, error) {
	cmd := exec.Command("git", "branch", "--show-current")
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("git branch failed: %w", err)
	}
	return strings.TrimSpace(string(output)), nil
}
