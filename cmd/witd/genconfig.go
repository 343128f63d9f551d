package witd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/arthur-debert/witd/pkg/config"
	"github.com/arthur-debert/witd/pkg/errors"
	"github.com/spf13/cobra"
)

func newGenConfigCmd(flags *globalFlags) *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:     "genconfig",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		Example: "  witd genconfig\n  witd genconfig --write\n  witd --config ./witd.toml genconfig -w",
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// A --config file that does not exist yet is the write target,
			// not a source.
			target := flags.configPath
			if write && target != "" {
				if _, err := os.Stat(target); os.IsNotExist(err) {
					flags.configPath = ""
				}
			}

			cfg, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}

			content, err := config.GenerateConfigContent(cfg)
			if err != nil {
				return err
			}

			if !write {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), content)
				return err
			}

			if target == "" {
				target = config.DefaultPath()
			}
			if err := writeConfigFile(target, content); err != nil {
				return err
			}

			renderer, err := newRenderer(cmd, flags)
			if err != nil {
				return err
			}
			return renderer.RenderMessage("Success", fmt.Sprintf(MsgConfigWritten, target))
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)
	return cmd
}

// writeConfigFile creates path with content, refusing to replace a file
func writeConfigFile(path, content string) error {
	if _, err := os.Stat(path); err == nil {
		return errors.Newf(errors.ErrInvalidInput, MsgErrConfigExists, path).WithDetail("path", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf(MsgErrWriteConfig, err)
	}
	if err := os.WriteFile(path, []byte(content+"\n"), 0644); err != nil {
		return fmt.Errorf(MsgErrWriteConfig, err)
	}
	return nil
}
