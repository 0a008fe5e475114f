// Package client provides commands that call a running character builder
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/KirkDiggler/rpg-charbuilder/internal/errors"
	"github.com/KirkDiggler/rpg-charbuilder/internal/handlers/charbuilder/v1alpha1"
	"github.com/KirkDiggler/rpg-charbuilder/internal/platform/otel"
	"github.com/KirkDiggler/rpg-charbuilder/internal/rules"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Call the character builder over gRPC",
	Long:  `Client commands walk a draft through character creation against a running server and print JSON responses.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	// Draft commands
	ClientCmd.AddCommand(createDraftCmd())
	ClientCmd.AddCommand(getDraftCmd())
	ClientCmd.AddCommand(deleteDraftCmd())
	ClientCmd.AddCommand(updateDraftCmds()...)
	ClientCmd.AddCommand(generateAbilitiesCmd())
	ClientCmd.AddCommand(pointBuyCmd())
	ClientCmd.AddCommand(swapAbilitiesCmd())
	ClientCmd.AddCommand(selectSpellsCmd())
	ClientCmd.AddCommand(selectPackCmd())
	ClientCmd.AddCommand(previewCmd())
	ClientCmd.AddCommand(finalizeCmd())

	// Character commands
	ClientCmd.AddCommand(getCharacterCmd())
	ClientCmd.AddCommand(listCharactersCmd())
	ClientCmd.AddCommand(deleteCharacterCmd())

	// Reference commands
	ClientCmd.AddCommand(referenceCmds()...)
	ClientCmd.AddCommand(spellProfileCmd())
	ClientCmd.AddCommand(listSpellsCmd())

	// Dice commands
	ClientCmd.AddCommand(rollDiceCmd())
	ClientCmd.AddCommand(getRollSessionCmd())
	ClientCmd.AddCommand(clearRollSessionCmd())
}

// createClient dials the server
func createClient() (*v1alpha1.Client, func(), error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		otel.DialOption(),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return v1alpha1.NewClient(conn), cleanup, nil
}

// call dials, runs fn with a timeout and prints its response as JSON
func call[Resp any](out io.Writer, fn func(context.Context, *v1alpha1.Client) (*Resp, error)) error {
	client, cleanup, err := createClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := fn(ctx, client)
	if err != nil {
		return describe(err)
	}
	return printJSON(out, resp)
}

// describe renders an error with its code and any field violations
func describe(err error) error {
	msg := fmt.Sprintf("%s: %s", errors.GetCode(err), errors.GetMessage(err))
	for _, v := range errors.FieldViolations(err) {
		msg += fmt.Sprintf("\n  %s: %s", v.Field, v.Description)
	}
	return fmt.Errorf("%s", msg)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func stdout() io.Writer { return os.Stdout }

// parseAssignments reads "str=15,dex=14" style ability assignments
func parseAssignments(pairs []string) (map[rules.Ability]int, error) {
	out := make(map[rules.Ability]int, len(pairs))
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("assignment %q must look like ability=score", pair)
		}
		ability, ok := rules.ParseAbility(name)
		if !ok {
			return nil, fmt.Errorf("unknown ability %q", name)
		}
		score, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("score for %s is not a number: %q", name, value)
		}
		out[ability] = score
	}
	return out, nil
}

// parseSpells reads "key:level" spell references; a bare key is level 0
func parseSpells(refs []string) ([]rules.SpellRef, error) {
	out := make([]rules.SpellRef, 0, len(refs))
	for _, ref := range refs {
		key, levelStr, hasLevel := strings.Cut(ref, ":")
		spell := rules.SpellRef{Key: strings.TrimSpace(key)}
		if hasLevel {
			level, err := strconv.Atoi(strings.TrimSpace(levelStr))
			if err != nil {
				return nil, fmt.Errorf("level for %s is not a number: %q", key, levelStr)
			}
			spell.Level = level
		}
		out = append(out, spell)
	}
	return out, nil
}

// parseItems reads "name:quantity" items; a bare name is quantity 1
func parseItems(values []string) ([]rules.Item, error) {
	out := make([]rules.Item, 0, len(values))
	for _, value := range values {
		item := rules.Item{Name: strings.TrimSpace(value), Quantity: 1}
		if i := strings.LastIndex(value, ":"); i > 0 {
			qty, err := strconv.Atoi(strings.TrimSpace(value[i+1:]))
			if err != nil {
				return nil, fmt.Errorf("quantity for %s is not a number: %q", value[:i], value[i+1:])
			}
			item = rules.Item{Name: strings.TrimSpace(value[:i]), Quantity: qty}
		}
		out = append(out, item)
	}
	return out, nil
}
