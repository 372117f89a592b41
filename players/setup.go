package players

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var ErrSetupAborted = errors.New("setup aborted")

const retries = 5

// Conn is a terminal to prompt on
type Conn struct {
	In  io.Reader
	Out io.Writer
}

// SetupResult holds the answers to the setup questions
type SetupResult struct {
	ConfigPath string
	Names      []string
}

// Setup asks for the configuration file, the number of players and their
// names. An empty answer keeps configPath, or crazy.cfg when configPath is
// empty. Empty and duplicate names are asked again. Running out of input
// aborts the setup.
// When conn.In is a *bufio.Reader it is read directly, so the caller can
// keep reading it once setup is done.
func Setup(conn Conn, configPath string) (SetupResult, error) {
	reader := bufio.NewReader(conn.In)
	result := SetupResult{}

	if configPath == "" {
		configPath = defaultConfigPath
	}
	path, err := prompt(reader, conn.Out, fmt.Sprintf(configPromptText, configPath))
	if err != nil {
		return result, err
	}
	if path == "" {
		path = configPath
	}
	result.ConfigPath = path

	count, err := askCount(reader, conn.Out)
	if err != nil {
		return result, err
	}

	ps := Players{}
	for i := 1; i <= count; i++ {
		name, err := askName(reader, conn.Out, ps, i)
		if err != nil {
			return result, err
		}
		ps = append(ps, NewPlayer(NewID(), name))
	}
	result.Names = ps.Names()

	return result, nil
}

func askCount(reader *bufio.Reader, out io.Writer) (int, error) {
	for retriesLeft := retries; retriesLeft > 0; retriesLeft-- {
		answer, err := prompt(reader, out, fmt.Sprintf(countPromptText, MinPlayers, MaxPlayers))
		if err != nil {
			return 0, err
		}

		count, err := strconv.Atoi(answer)
		if err != nil || count < MinPlayers {
			SendText(out, retryCountText, MinPlayers, MaxPlayers)
			continue
		}
		if count > MaxPlayers {
			SendText(out, clampedPlayersText, MaxPlayers, MaxPlayers)
			count = MaxPlayers
		}
		return count, nil
	}

	return 0, fmt.Errorf("%w: %s", ErrSetupAborted, maxPromptAttemptsErr)
}

func askName(reader *bufio.Reader, out io.Writer, ps Players, i int) (string, error) {
	for {
		name, err := prompt(reader, out, fmt.Sprintf(namePromptText, i))
		if err != nil {
			return "", err
		}

		err = ps.CheckName(name)
		switch {
		case err == nil:
			return name, nil
		case errors.Is(err, ErrEmptyName):
			SendText(out, retryEmptyNameText)
		case errors.Is(err, ErrDuplicateName):
			SendText(out, retryDuplicateText, name)
		}
	}
}

// prompt reads one trimmed line. A last line without a newline still counts.
func prompt(reader *bufio.Reader, out io.Writer, question string) (string, error) {
	io.WriteString(out, question)

	line, err := reader.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimSpace(line), nil
		}
		if err == io.EOF {
			return "", fmt.Errorf("%w: %v", ErrSetupAborted, io.ErrUnexpectedEOF)
		}
		return "", fmt.Errorf("%w: %v", ErrSetupAborted, err)
	}

	return strings.TrimSpace(line), nil
}
