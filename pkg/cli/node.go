package cli

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/mailnode/pkg/cli/config"
	"github.com/secmon-lab/mailnode/pkg/domain/model"
	"github.com/secmon-lab/mailnode/pkg/domain/types"
	"github.com/secmon-lab/mailnode/pkg/usecase"
	"github.com/secmon-lab/mailnode/pkg/utils/apperr"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

func cmdGroups() *cli.Command {
	var (
		mailerliteCfg config.MailerLite
		raw           bool
	)

	return &cli.Command{
		Name:  "groups",
		Usage: "List subscriber groups",
		Flags: joinFlags(
			mailerliteCfg.Flags(),
			[]cli.Flag{
				&cli.BoolFlag{
					Name:        "raw",
					Usage:       "Print the MailerLite response unmodified instead of name/value options",
					Destination: &raw,
				},
			},
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			node := usecase.NewNode(mailerliteCfg.Configure())
			cred := mailerliteCfg.Credential()

			if raw {
				body, err := node.Dispatch(ctx, types.OperationGetGroups, cred, model.InvocationItem{})
				if err != nil {
					apperr.Handle(ctx, err)
					return err
				}
				return writeJSON(c.Root().Writer, body)
			}

			options, err := node.LoadOptions(ctx, model.LoadOptionsGetGroups, cred)
			if err != nil {
				apperr.Handle(ctx, err)
				return err
			}
			return writeJSON(c.Root().Writer, options)
		},
	}
}

func cmdSubscribe() *cli.Command {
	var (
		mailerliteCfg config.MailerLite
		item          model.InvocationItem
	)

	return &cli.Command{
		Name:  "subscribe",
		Usage: "Add a subscriber to a group",
		Flags: joinFlags(
			mailerliteCfg.Flags(),
			[]cli.Flag{
				&cli.StringFlag{
					Name:        "group-id",
					Usage:       "MailerLite group ID",
					Required:    true,
					Destination: &item.GroupID,
				},
				&cli.StringFlag{
					Name:        "email",
					Usage:       "Subscriber email address",
					Required:    true,
					Destination: &item.Email,
				},
			},
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			node := usecase.NewNode(mailerliteCfg.Configure())

			body, err := node.Dispatch(ctx, types.OperationAddSubscriber, mailerliteCfg.Credential(), item)
			if err != nil {
				apperr.Handle(ctx, err)
				return err
			}
			return writeJSON(c.Root().Writer, body)
		},
	}
}

func cmdVerify() *cli.Command {
	var mailerliteCfg config.MailerLite

	return &cli.Command{
		Name:  "verify",
		Usage: "Check that the API key is accepted by MailerLite",
		Flags: mailerliteCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			node := usecase.NewNode(mailerliteCfg.Configure())

			result := node.TestCredential(ctx, mailerliteCfg.Credential())
			if err := writeJSON(c.Root().Writer, result); err != nil {
				return err
			}
			if result.Status != model.CredentialTestOK {
				return goerr.New("credential test failed", goerr.V("message", result.Message))
			}
			return nil
		},
	}
}

// batchFile is the input of the run command. JSON input is accepted as YAML.
type batchFile struct {
	Items []model.InvocationItem `yaml:"items"`
}

func loadBatch(r io.Reader) ([]model.InvocationItem, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read batch input")
	}

	var batch batchFile
	if err := yaml.Unmarshal(raw, &batch); err != nil {
		return nil, goerr.Wrap(err, "failed to parse batch input")
	}
	return batch.Items, nil
}

func cmdRun() *cli.Command {
	var (
		mailerliteCfg config.MailerLite
		input         string
	)

	return &cli.Command{
		Name:  "run",
		Usage: "Execute the node over a batch of items read from a YAML or JSON file",
		Flags: joinFlags(
			mailerliteCfg.Flags(),
			[]cli.Flag{
				&cli.StringFlag{
					Name:        "input",
					Aliases:     []string{"i"},
					Usage:       "Batch file path, or - for stdin",
					Required:    true,
					Destination: &input,
				},
			},
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			var r io.Reader = c.Root().Reader
			if input != "-" {
				f, err := os.Open(input)
				if err != nil {
					return goerr.Wrap(err, "failed to open batch file", goerr.V("path", input))
				}
				defer f.Close()
				r = f
			}

			items, err := loadBatch(r)
			if err != nil {
				return goerr.Wrap(err, "invalid batch", goerr.V("path", input))
			}
			logger.Debug("Batch loaded", slog.String("path", input), slog.Int("items", len(items)))

			node := usecase.NewNode(mailerliteCfg.Configure())
			results, err := node.Execute(ctx, mailerliteCfg.Credential(), items)
			if err != nil {
				apperr.Handle(ctx, err)
				return err
			}

			return writeJSON(c.Root().Writer, [][]model.ExecutionResult{results})
		},
	}
}
