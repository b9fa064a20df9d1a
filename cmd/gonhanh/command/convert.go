package command

import (
	"bufio"
	"io"

	"github.com/spf13/cobra"

	"gonhanh/internal/app"
)

var (
	remote     bool
	socketPath string

	Convert = &cobra.Command{
		Use:   "convert",
		Short: "Converts keystroke lines from stdin into Vietnamese text on stdout.",
		Long: "Reads stdin line by line and writes what typing each line would display.\n" +
			"With --remote the lines go through a running `gonhanh serve`; on failure conversion falls back to local.",
		Args: cobra.NoArgs,
		RunE: commandConvert,
	}
)

func commandConvert(cmd *cobra.Command, args []string) error {
	path := settings.SocketPath
	if cmd.Flags().Changed("socket") {
		path = socketPath
	}
	return convertLines(cmd.InOrStdin(), cmd.OutOrStdout(), lineConverter(remote, path))
}

type converter interface {
	Translate(line string) (string, error)
}

type localConverter struct {
	translator *app.Translator
}

func (c localConverter) Translate(line string) (string, error) {
	return c.translator.Translate(line), nil
}

// remoteConverter uses the server until it fails once, then converts
// locally for the rest of the input.
type remoteConverter struct {
	path   string
	client *app.Client
	local  localConverter
	failed bool
}

func (c *remoteConverter) Translate(line string) (string, error) {
	if !c.failed {
		converted, err := c.remote(line)
		if err == nil {
			return converted, nil
		}
		logger.Warn("falling back to local conversion", "socket", c.path, "err", err)
		c.failed = true
		if c.client != nil {
			c.client.Close()
			c.client = nil
		}
	}
	return c.local.Translate(line)
}

func (c *remoteConverter) remote(line string) (string, error) {
	if c.client == nil {
		client, err := app.DialTranslationServer(c.path)
		if err != nil {
			return "", err
		}
		c.client = client
	}
	return c.client.Translate(line)
}

func lineConverter(useRemote bool, path string) converter {
	local := localConverter{translator: app.NewTranslator(engineOptions())}
	if !useRemote {
		return local
	}
	return &remoteConverter{path: path, local: local}
}

func convertLines(r io.Reader, w io.Writer, conv converter) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), 1024*1024)
	writer := bufio.NewWriter(w)
	defer writer.Flush()

	for scanner.Scan() {
		converted, err := conv.Translate(scanner.Text())
		if err != nil {
			return err
		}
		if _, err := writer.WriteString(converted); err != nil {
			return err
		}
		if err := writer.WriteByte('\n'); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func init() {
	Convert.Flags().BoolVar(&remote, "remote", false, "convert through the translation server")
	Convert.Flags().StringVar(&socketPath, "socket", "", "unix socket of the translation server")
	Root.AddCommand(Convert)
}
