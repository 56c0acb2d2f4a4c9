package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/terraincognita07/fitplanner/internal/services"
	"github.com/terraincognita07/fitplanner/internal/storage"
)

var ErrAborted = errors.New("aborted")

// RunClearSessionCommand wipes every session key of the configured backend.
// On an interactive terminal the user must confirm unless force is set.
func RunClearSessionCommand(config storage.Config, force bool, stdin io.Reader, stdout io.Writer) error {
	if !force && isInteractive(stdin) {
		fmt.Fprint(stdout, "This removes the profile, plans and weight history. Type \"yes\" to continue: ")
		answer, err := bufio.NewReader(stdin).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("read confirmation: %w", err)
		}
		if strings.TrimSpace(strings.ToLower(answer)) != "yes" {
			return ErrAborted
		}
	}

	store, closeStore, err := openStore(config)
	if err != nil {
		return err
	}
	defer closeStore()

	if err := store.ClearSession(); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Session cleared (%s backend)\n", backendName(config))
	return nil
}

// RunMetricsCommand prints the health metrics of the stored profile.
func RunMetricsCommand(config storage.Config, stdout io.Writer) error {
	store, closeStore, err := openStore(config)
	if err != nil {
		return err
	}
	defer closeStore()

	profile, found, err := store.GetProfile()
	if err != nil {
		return fmt.Errorf("load profile: %w", err)
	}
	if !found {
		return services.ErrNoActiveProfile
	}
	metrics, err := services.ComputeHealthMetrics(profile)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Profile:        %s\n", profile.Name)
	fmt.Fprintf(stdout, "BMI:            %.1f (%s)\n", metrics.BMI, metrics.BMICategory)
	fmt.Fprintf(stdout, "BMR:            %d kcal\n", metrics.BMR)
	fmt.Fprintf(stdout, "Daily calories: %d kcal\n", metrics.DailyCalories)
	return nil
}

func openStore(config storage.Config) (*services.SessionStore, func() error, error) {
	backend, closeBackend, err := storage.Open(config)
	if err != nil {
		return nil, nil, fmt.Errorf("storage init failed: %w", err)
	}

	store := services.NewSessionStore(backend)
	if err := store.Init(); err != nil {
		_ = closeBackend()
		return nil, nil, err
	}
	return store, closeBackend, nil
}

func backendName(config storage.Config) string {
	name := strings.ToLower(strings.TrimSpace(config.Backend))
	if name == "" {
		return storage.BackendSQLite
	}
	return name
}

func isInteractive(stdin io.Reader) bool {
	file, ok := stdin.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}
