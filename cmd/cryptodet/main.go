// Package main provides the CLI entrypoint for cryptodet.
package main

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/verte-zerg/cryptodet/internal/cipher"
	"github.com/verte-zerg/cryptodet/internal/config"
	"github.com/verte-zerg/cryptodet/internal/game"
	"github.com/verte-zerg/cryptodet/internal/logger"
	"github.com/verte-zerg/cryptodet/internal/model"
	"github.com/verte-zerg/cryptodet/internal/passui"
	"github.com/verte-zerg/cryptodet/internal/password"
	"github.com/verte-zerg/cryptodet/internal/phrases"
	"github.com/verte-zerg/cryptodet/internal/store"
	"github.com/verte-zerg/cryptodet/internal/tui"
)

const (
	defaultAlphabet = "ru"
	defaultShift    = 3

	defaultPassLength    = 16
	defaultPassUpper     = true
	defaultPassLower     = true
	defaultPassDigits    = true
	defaultPassSymbols   = false
	defaultPassObfuscate = password.ObfuscateNone
	defaultPassShift     = 3
	defaultPassCount     = 1

	asciiAlphabet = "ascii"
)

var (
	debugLog bool

	detectiveAlphabet string
	detectiveShift    int
	detectivePhrases  string

	passLength      int
	passUpper       bool
	passLower       bool
	passDigits      bool
	passSymbols     bool
	passObfuscate   string
	passShift       int
	passKey         string
	passCount       int
	passInteractive bool

	cipherAlphabet string
	cipherDecrypt  bool
	caesarShift    int
	vigenereKey    string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "cryptodet",
		Short:         "Crypto-detective game and password generator",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runDetectiveCmd,
	}

	rootCmd.PersistentFlags().BoolVar(&debugLog, "debug", false, "write debug-level logs")
	rootCmd.Flags().StringVar(&detectiveAlphabet, "alphabet", defaultAlphabet, "cipher alphabet (ru|en)")
	rootCmd.Flags().IntVar(&detectiveShift, "shift", defaultShift, "initial shift in the learning tab (1-10)")
	rootCmd.Flags().StringVar(&detectivePhrases, "phrases", "", "file with custom mission phrases, one per line")

	rootCmd.AddCommand(newPasswordCmd())
	rootCmd.AddCommand(newCaesarCmd())
	rootCmd.AddCommand(newVigenereCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func runDetectiveCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "alphabet", &detectiveAlphabet, fileCfg.Detective.Alphabet)
	applyIntConfig(cmd, "shift", &detectiveShift, fileCfg.Detective.Shift)
	applyStringConfig(cmd, "phrases", &detectivePhrases, fileCfg.Detective.Phrases)

	cfg := model.DetectiveConfig{
		Alphabet:    strings.ToLower(strings.TrimSpace(detectiveAlphabet)),
		Shift:       detectiveShift,
		PhrasesPath: detectivePhrases,
	}
	if err := validateDetectiveConfig(cfg); err != nil {
		return err
	}
	alphabet, err := cipher.AlphabetByCode(cfg.Alphabet)
	if err != nil {
		return fmt.Errorf("--alphabet: %w", err)
	}

	closeLog := startLogger(cmd, fileCfg)
	defer closeLog()

	gen := game.New()
	if cfg.PhrasesPath != "" {
		if err := usePhrases(gen, cfg.PhrasesPath); err != nil {
			return err
		}
	}

	st, err := store.OpenMemory()
	if err != nil {
		return fmt.Errorf("failed to open journal: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close journal: %v\n", cerr)
		}
	}()

	m := tui.NewModel(tui.Options{
		Alphabet: alphabet,
		Shift:    cfg.Shift,
		Store:    st,
		Gen:      gen,
	})
	logger.L().Info("detective.started", zap.String("session", m.Session().ID), zap.String("alphabet", alphabet.Code()))
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	s := m.Session()
	logger.L().Info("detective.finished",
		zap.String("session", s.ID),
		zap.String("player", s.PlayerName),
		zap.Int("score", s.Score),
		zap.Int("missions", len(s.CompletedMissions)),
	)
	return nil
}

// usePhrases loads a phrase file and installs the phrases that fit each
// built-in alphabet.
func usePhrases(gen *game.Generator, path string) error {
	list, err := phrases.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load phrases: %w", err)
	}
	used := 0
	for _, alphabet := range []*cipher.Alphabet{cipher.Russian, cipher.English} {
		fitting := phrases.Filter(list, alphabet)
		gen.UsePhrases(alphabet.Code(), fitting)
		used += len(fitting)
	}
	if used == 0 {
		logErrf("no phrase in %s fits a supported alphabet; using built-in phrases\n", path)
	}
	return nil
}

func newPasswordCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "password",
		Short: "Generate passwords",
		Args:  cobra.NoArgs,
		RunE:  runPasswordCmd,
	}
	cmd.Flags().IntVar(&passLength, "length", defaultPassLength, "password length")
	cmd.Flags().BoolVar(&passUpper, "upper", defaultPassUpper, "include uppercase letters")
	cmd.Flags().BoolVar(&passLower, "lower", defaultPassLower, "include lowercase letters")
	cmd.Flags().BoolVar(&passDigits, "digits", defaultPassDigits, "include digits")
	cmd.Flags().BoolVar(&passSymbols, "symbols", defaultPassSymbols, "include punctuation symbols")
	cmd.Flags().StringVar(&passObfuscate, "obfuscate", defaultPassObfuscate, "obfuscation (none|caesar|vigenere)")
	cmd.Flags().IntVar(&passShift, "shift", defaultPassShift, "caesar obfuscation shift")
	cmd.Flags().StringVar(&passKey, "key", "", "vigenere obfuscation key (latin letters)")
	cmd.Flags().IntVar(&passCount, "count", defaultPassCount, "number of passwords to print")
	cmd.Flags().BoolVarP(&passInteractive, "interactive", "i", false, "open the interactive generator")
	return cmd
}

func runPasswordCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "length", &passLength, fileCfg.Password.Length)
	applyBoolConfig(cmd, "upper", &passUpper, fileCfg.Password.Upper)
	applyBoolConfig(cmd, "lower", &passLower, fileCfg.Password.Lower)
	applyBoolConfig(cmd, "digits", &passDigits, fileCfg.Password.Digits)
	applyBoolConfig(cmd, "symbols", &passSymbols, fileCfg.Password.Symbols)
	applyStringConfig(cmd, "obfuscate", &passObfuscate, fileCfg.Password.Obfuscate)
	applyIntConfig(cmd, "shift", &passShift, fileCfg.Password.Shift)
	applyStringConfig(cmd, "key", &passKey, fileCfg.Password.Key)

	cfg := model.PasswordConfig{
		Length:    passLength,
		Upper:     passUpper,
		Lower:     passLower,
		Digits:    passDigits,
		Symbols:   passSymbols,
		Obfuscate: strings.ToLower(strings.TrimSpace(passObfuscate)),
		Shift:     passShift,
		Key:       passKey,
		Count:     passCount,
	}

	closeLog := startLogger(cmd, fileCfg)
	defer closeLog()

	spec := passwordSpec(cfg)
	gen := password.New()
	if passInteractive {
		program := tea.NewProgram(passui.NewModel(gen, spec), tea.WithAltScreen())
		if _, err := program.Run(); err != nil {
			return fmt.Errorf("failed to run password TUI: %w", err)
		}
		return nil
	}

	if err := validatePasswordConfig(cfg); err != nil {
		return err
	}
	if cfg.Obfuscate != password.ObfuscateNone && term.IsTerminal(int(os.Stderr.Fd())) {
		logErrln("note: obfuscation is reversible and does not make passwords stronger")
	}
	return printPasswords(cmd.OutOrStdout(), gen, spec, cfg.Count)
}

func printPasswords(w io.Writer, gen *password.Generator, spec password.Spec, count int) error {
	for i := 0; i < count; i++ {
		pw, err := gen.Generate(spec)
		if err != nil {
			return fmt.Errorf("failed to generate password: %w", err)
		}
		if _, err := fmt.Fprintln(w, pw); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	logger.L().Info("password.printed", zap.Int("count", count), zap.Int("length", spec.Length), zap.String("obfuscate", spec.Obfuscate))
	return nil
}

func passwordSpec(cfg model.PasswordConfig) password.Spec {
	return password.Spec{
		Length:    cfg.Length,
		Upper:     cfg.Upper,
		Lower:     cfg.Lower,
		Digits:    cfg.Digits,
		Symbols:   cfg.Symbols,
		Obfuscate: cfg.Obfuscate,
		Shift:     cfg.Shift,
		Key:       cfg.Key,
	}
}

func newCaesarCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "caesar [text...]",
		Short: "Encrypt or decrypt text with the Caesar cipher",
		Long:  "Encrypt or decrypt text with the Caesar cipher. Text is read from arguments or, when none are given, from standard input.",
		RunE:  runCaesarCmd,
	}
	cmd.Flags().IntVar(&caesarShift, "shift", defaultShift, "shift")
	addCipherFlags(cmd)
	return cmd
}

func newVigenereCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vigenere [text...]",
		Short: "Encrypt or decrypt text with the Vigenère cipher",
		Long:  "Encrypt or decrypt text with the Vigenère cipher. Text is read from arguments or, when none are given, from standard input.",
		RunE:  runVigenereCmd,
	}
	cmd.Flags().StringVar(&vigenereKey, "key", "", "key word")
	addCipherFlags(cmd)
	return cmd
}

func addCipherFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&cipherAlphabet, "alphabet", defaultAlphabet, "alphabet (ru|en|ascii)")
	cmd.Flags().BoolVarP(&cipherDecrypt, "decrypt", "d", false, "decrypt instead of encrypt")
}

func runCaesarCmd(cmd *cobra.Command, args []string) error {
	text, err := readText(args, cmd.InOrStdin())
	if err != nil {
		return err
	}
	out, err := caesarText(text, caesarShift, cipherAlphabet, cipherDecrypt)
	if err != nil {
		return err
	}
	return writeLine(cmd.OutOrStdout(), out)
}

func runVigenereCmd(cmd *cobra.Command, args []string) error {
	if strings.TrimSpace(vigenereKey) == "" {
		return fmt.Errorf("--key must not be empty")
	}
	text, err := readText(args, cmd.InOrStdin())
	if err != nil {
		return err
	}
	out, err := vigenereText(text, vigenereKey, cipherAlphabet, cipherDecrypt)
	if err != nil {
		return err
	}
	return writeLine(cmd.OutOrStdout(), out)
}

func caesarText(text string, shift int, alphabetCode string, decrypt bool) (string, error) {
	if normalizeAlphabetCode(alphabetCode) == asciiAlphabet {
		if decrypt {
			return cipher.CaesarASCIIDecrypt(text, shift), nil
		}
		return cipher.CaesarASCII(text, shift), nil
	}
	alphabet, err := cipherAlphabetByCode(alphabetCode)
	if err != nil {
		return "", err
	}
	if decrypt {
		return cipher.CaesarDecrypt(cipher.Normalize(text), shift, alphabet)
	}
	return cipher.Caesar(cipher.Normalize(text), shift, alphabet)
}

func vigenereText(text, key, alphabetCode string, decrypt bool) (string, error) {
	if normalizeAlphabetCode(alphabetCode) == asciiAlphabet {
		if decrypt {
			return cipher.VigenereASCIIDecrypt(text, key)
		}
		return cipher.VigenereASCII(text, key)
	}
	alphabet, err := cipherAlphabetByCode(alphabetCode)
	if err != nil {
		return "", err
	}
	text = cipher.Normalize(text)
	key = cipher.Normalize(key)
	if decrypt {
		return cipher.VigenereDecrypt(text, key, alphabet)
	}
	return cipher.Vigenere(text, key, alphabet)
}

func normalizeAlphabetCode(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}

// cipherAlphabetByCode resolves the non-ascii alphabets accepted by the
// caesar and vigenere commands.
func cipherAlphabetByCode(code string) (*cipher.Alphabet, error) {
	alphabet, err := cipher.AlphabetByCode(normalizeAlphabetCode(code))
	if err != nil {
		return nil, fmt.Errorf("--alphabet must be ru, en or %s: %w", asciiAlphabet, err)
	}
	return alphabet, nil
}

// readText joins args, or reads r when no args are given and r is not an
// interactive terminal.
func readText(args []string, r io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	if f, ok := r.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return "", fmt.Errorf("no text given: pass it as arguments or pipe it on stdin")
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}

func writeLine(w io.Writer, s string) error {
	if _, err := fmt.Fprintln(w, s); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

// startLogger installs the file logger. Logging is best-effort: a failure is
// reported on stderr and the no-op logger stays in place.
func startLogger(cmd *cobra.Command, fileCfg config.FileConfig) func() {
	applyBoolConfig(cmd, "debug", &debugLog, fileCfg.Log.Debug)
	path := config.DefaultLogPath()
	cleanup, err := logger.Setup(logger.Config{Path: path, Debug: debugLog})
	if err != nil {
		logErrf("failed to open log %s: %v\n", path, err)
		return func() {}
	}
	return func() {
		if err := cleanup(); err != nil {
			logErrf("failed to close log: %v\n", err)
		}
	}
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# cryptodet configuration
# Uncomment a value to enable it. CLI flags override config values.

[detective]
# alphabet = %q            # Cipher alphabet: ru or en
# shift = %d                # Initial shift in the learning tab (1-10)
# phrases = ""             # File with custom mission phrases, one per line

[password]
# length = %d              # Password length
# upper = %t              # Include uppercase letters
# lower = %t              # Include lowercase letters
# digits = %t             # Include digits
# symbols = %t           # Include punctuation symbols
# obfuscate = %q        # none, caesar or vigenere (not a security feature)
# shift = %d                # Caesar obfuscation shift
# key = ""                 # Vigenere obfuscation key (latin letters)

[log]
# debug = false            # Write debug-level logs
`,
		defaultAlphabet,
		defaultShift,
		defaultPassLength,
		defaultPassUpper,
		defaultPassLower,
		defaultPassDigits,
		defaultPassSymbols,
		defaultPassObfuscate,
		defaultPassShift,
	)
}

func validateDetectiveConfig(cfg model.DetectiveConfig) error {
	if cfg.Alphabet != "ru" && cfg.Alphabet != "en" {
		return fmt.Errorf("--alphabet must be ru or en")
	}
	if cfg.Shift < 1 || cfg.Shift > 10 {
		return fmt.Errorf("--shift must be between 1 and 10")
	}
	return nil
}

func validatePasswordConfig(cfg model.PasswordConfig) error {
	if cfg.Count <= 0 {
		return fmt.Errorf("--count must be > 0")
	}
	if cfg.Length <= 0 {
		return fmt.Errorf("--length must be > 0")
	}
	if err := passwordSpec(cfg).Validate(); err != nil {
		return fmt.Errorf("invalid password settings: %w", err)
	}
	return nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
