package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abirabbas/portfolio-api/internal/domain"
)

const (
	envAPIURL     = "PORTFOLIO_API_URL"
	defaultAPIURL = "http://localhost:8080"
)

// AskCmd returns the ask command, a thin client for the assistant endpoint.
func AskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ask <message>",
		Short: "Ask the portfolio assistant a question",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runAsk,
	}

	cmd.Flags().String("url", "", "API base URL (overrides "+envAPIURL+")")
	cmd.Flags().Bool("json", false, "Print the raw JSON response")

	return cmd
}

func runAsk(cmd *cobra.Command, args []string) error {
	baseURL, _ := cmd.Flags().GetString("url")
	if baseURL == "" {
		baseURL = os.Getenv(envAPIURL)
	}
	if baseURL == "" {
		baseURL = defaultAPIURL
	}
	baseURL = strings.TrimRight(baseURL, "/")

	payload, err := json.Marshal(map[string]string{"message": strings.Join(args, " ")})
	if err != nil {
		return err
	}

	client := &http.Client{Timeout: 60 * time.Second}
	resp, err := client.Post(baseURL+"/assistant", "application/json", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if rawJSON, _ := cmd.Flags().GetBool("json"); rawJSON {
		fmt.Fprintln(cmd.OutOrStdout(), string(body))
		return nil
	}

	var assistantResp domain.AssistantResponse
	if err := json.Unmarshal(body, &assistantResp); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, assistantResp.Reply)
	fmt.Fprintln(out)
	fmt.Fprintf(out, "mode: %s\n", assistantResp.Mode)
	for _, source := range assistantResp.Sources {
		if act := source["act"]; act != "" {
			fmt.Fprintf(out, "source: %s\n", act)
		}
	}
	return nil
}
