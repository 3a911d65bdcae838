package cli

import (
	"context"
	"fmt"
	"strings"
)

// resolveID matches user input against a set of known IDs: exact match first,
// then unique prefix. kind names the entity for error messages.
func resolveID(input, kind string, ids []string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("%s ID is required", kind)
	}

	for _, id := range ids {
		if id == input {
			return id, nil
		}
	}

	var matches []string
	for _, id := range ids {
		if strings.HasPrefix(id, input) {
			matches = append(matches, id)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%s not found: %q", kind, input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%s ID prefix %q is ambiguous (%d matches)", kind, input, len(matches))
	}
}

func resolveSubjectID(ctx context.Context, app *App, input string) (string, error) {
	subjects, err := app.Subjects.List(ctx)
	if err != nil {
		return "", err
	}
	ids := make([]string, len(subjects))
	for i, s := range subjects {
		ids[i] = s.ID
	}
	return resolveID(input, "subject", ids)
}

func resolveTaskID(ctx context.Context, app *App, input string) (string, error) {
	tasks, err := app.Tasks.ListAll(ctx)
	if err != nil {
		return "", err
	}
	ids := make([]string, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID
	}
	return resolveID(input, "task", ids)
}

func resolveSessionID(ctx context.Context, app *App, input string) (string, error) {
	sessions, err := app.Sessions.ListAll(ctx)
	if err != nil {
		return "", err
	}
	ids := make([]string, len(sessions))
	for i, s := range sessions {
		ids[i] = s.ID
	}
	return resolveID(input, "session", ids)
}
