package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/MKhiriev/data-catalog/internal/adapter"
	"github.com/MKhiriev/data-catalog/internal/logger"
	"github.com/MKhiriev/data-catalog/models"
	"github.com/spf13/cobra"
)

// passwordEnv lets scripts provide the password without a flag.
const passwordEnv = "DATACATALOG_PASSWORD"

type uploadFlags struct {
	server   string
	username string
	password string
	file     string
	dataType string
	timeout  time.Duration
}

// NewUploadCommand returns the upload tool. Objects from a JSON array are
// added to the catalog, or update existing objects of the same name.
//
// The password is taken from --password, then from $DATACATALOG_PASSWORD,
// then from the first line of stdin.
func NewUploadCommand(out io.Writer, log *logger.Logger) *cobra.Command {
	f := &uploadFlags{}

	cmd := &cobra.Command{
		Use:           "upload",
		Short:         "Upload catalog objects from a JSON file",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runUpload(cmd, f, log)
		},
	}
	cmd.SetOut(out)
	cmd.SetErr(out)

	cmd.Flags().StringVarP(&f.server, "server", "s", "http://localhost:8000/", "Catalog server URL")
	cmd.Flags().StringVarP(&f.username, "user", "u", "", "User name")
	cmd.Flags().StringVarP(&f.password, "password", "p", "", "Password")
	cmd.Flags().StringVarP(&f.file, "dataset", "f", "", "JSON file with an array of objects")
	cmd.Flags().StringVarP(&f.dataType, "type", "t", models.Dataset.String(), "Location data type to upload to")
	cmd.Flags().DurationVar(&f.timeout, "timeout", 30*time.Second, "Request timeout")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("dataset")
	return cmd
}

func runUpload(cmd *cobra.Command, f *uploadFlags, log *logger.Logger) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	dataType, err := models.ParseLocationDataType(f.dataType)
	if err != nil {
		return usageErrorf("%v", err)
	}

	items, err := readItems(f.file)
	if err != nil {
		return err
	}

	password, err := resolvePassword(f.password, cmd.InOrStdin())
	if err != nil {
		return err
	}

	client, err := adapter.NewHTTPCatalogClient(f.server, f.timeout, log)
	if err != nil {
		return err
	}
	if err := client.Login(ctx, f.username, password); err != nil {
		return fmt.Errorf("unable to authenticate: %w", err)
	}

	results, err := adapter.Upload(ctx, client, dataType, items)
	if err != nil {
		return err
	}

	failed := 0
	for _, r := range results {
		switch {
		case r.Err != nil:
			failed++
			fmt.Fprintf(out, "%s failed: %v\n", r.Name, r.Err)
		case r.Updated:
			fmt.Fprintf(out, "%s is already on server (id=%s), updated\n", r.Name, r.ID)
		default:
			fmt.Fprintf(out, "sent %s -> %s\n", r.Name, r.ID)
		}
	}

	entries, err := client.List(ctx, dataType, models.Filter{})
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "objects on the server (%s):\n", dataType)
	for _, e := range entries {
		fmt.Fprintf(out, "%s\t%s\n", e.ID, e.Name)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d objects failed to upload", failed, len(results))
	}
	return nil
}

func readItems(path string) ([]models.LocationData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset file: %w", err)
	}

	var items []models.LocationData
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("dataset file must hold a JSON array of objects: %w", err)
	}
	return items, nil
}

func resolvePassword(flagValue string, stdin io.Reader) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if env := os.Getenv(passwordEnv); env != "" {
		return env, nil
	}

	line, err := bufio.NewReader(stdin).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("read password: %w", err)
	}
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return "", usageErrorf("password required: use --password, $%s or stdin", passwordEnv)
	}
	return line, nil
}
