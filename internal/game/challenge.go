package game

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/verte-zerg/cryptodet/internal/cipher"
	"github.com/verte-zerg/cryptodet/internal/model"
)

const (
	minCaesarShift = 1
	maxCaesarShift = 5
)

var defaultPhrases = map[string]map[string][]string{
	"ru": {
		KindCaesar:   {"пройди обучение", "стань детективом", "разгадай тайну"},
		KindVigenere: {"перехвати сообщение", "агент раскрыт", "встреча отменена"},
		KindMixed:    {"злодей прячется в архиве", "код от сейфа у курьера", "операция начинается в полночь"},
	},
	"en": {
		KindCaesar:   {"start your journey", "become a detective", "solve the mystery"},
		KindVigenere: {"intercept the message", "the agent is exposed", "the meeting is cancelled"},
		KindMixed:    {"the villain hides in the archive", "the courier has the vault code", "the operation starts at midnight"},
	},
}

var defaultKeys = map[string][]string{
	"ru": {"ключ", "шифр", "тайна"},
	"en": {"key", "cipher", "secret"},
}

// Challenge is one encrypted message to solve for a mission.
type Challenge struct {
	Mission    Mission
	Alphabet   *cipher.Alphabet
	Plaintext  string
	Ciphertext string
	Shift      int
	Key        string
}

// Hint describes how the ciphertext was produced.
func (c Challenge) Hint() string {
	switch c.Mission.Kind {
	case KindCaesar:
		return fmt.Sprintf("Шифр Цезаря со сдвигом %d", c.Shift)
	case KindVigenere:
		return fmt.Sprintf("Шифр Виженера с ключом «%s»", c.Key)
	default:
		return fmt.Sprintf("Сначала Виженер с ключом «%s», затем Цезарь со сдвигом %d", c.Key, c.Shift)
	}
}

// Check compares an answer with the plaintext, ignoring case and surrounding
// whitespace.
func (c Challenge) Check(answer string) bool {
	answer = strings.ToLower(strings.TrimSpace(cipher.Normalize(answer)))
	return strings.Join(strings.Fields(answer), " ") == c.Plaintext
}

// Generator produces randomized mission challenges.
type Generator struct {
	rnd    *rand.Rand
	custom map[string][]string
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewWithSeed(time.Now().UnixNano())
}

// NewWithSeed returns a deterministic Generator.
func NewWithSeed(seed int64) *Generator {
	return &Generator{
		rnd:    rand.New(rand.NewSource(seed)),
		custom: map[string][]string{},
	}
}

// UsePhrases replaces the built-in phrases for the alphabet code with list.
// An empty list restores the built-in phrases.
func (g *Generator) UsePhrases(code string, list []string) {
	if len(list) == 0 {
		delete(g.custom, code)
		return
	}
	g.custom[code] = append([]string(nil), list...)
}

// Generate builds a challenge for the mission over the alphabet.
func (g *Generator) Generate(m Mission, alphabet *cipher.Alphabet) (Challenge, error) {
	if alphabet == nil {
		return Challenge{}, fmt.Errorf("%w: alphabet is empty", model.ErrInvalidArgument)
	}
	text, err := g.pick(g.phrasesFor(alphabet.Code(), m.Kind))
	if err != nil {
		return Challenge{}, fmt.Errorf("no phrases for alphabet %q: %w", alphabet.Code(), err)
	}
	c := Challenge{Mission: m, Alphabet: alphabet, Plaintext: text}

	switch m.Kind {
	case KindCaesar:
		c.Shift = g.shift()
		c.Ciphertext, err = cipher.Caesar(text, c.Shift, alphabet)
	case KindVigenere:
		if c.Key, err = g.pick(defaultKeys[alphabet.Code()]); err != nil {
			return Challenge{}, fmt.Errorf("no keys for alphabet %q: %w", alphabet.Code(), err)
		}
		c.Ciphertext, err = cipher.Vigenere(text, c.Key, alphabet)
	case KindMixed:
		if c.Key, err = g.pick(defaultKeys[alphabet.Code()]); err != nil {
			return Challenge{}, fmt.Errorf("no keys for alphabet %q: %w", alphabet.Code(), err)
		}
		c.Shift = g.shift()
		var inner string
		if inner, err = cipher.Vigenere(text, c.Key, alphabet); err == nil {
			c.Ciphertext, err = cipher.Caesar(inner, c.Shift, alphabet)
		}
	default:
		return Challenge{}, fmt.Errorf("%w: unknown mission kind %q", model.ErrInvalidArgument, m.Kind)
	}
	if err != nil {
		return Challenge{}, err
	}
	return c, nil
}

func (g *Generator) phrasesFor(code, kind string) []string {
	if list, ok := g.custom[code]; ok {
		return list
	}
	return defaultPhrases[code][kind]
}

func (g *Generator) pick(list []string) (string, error) {
	if len(list) == 0 {
		return "", model.ErrInvalidArgument
	}
	return list[g.rnd.Intn(len(list))], nil
}

func (g *Generator) shift() int {
	return minCaesarShift + g.rnd.Intn(maxCaesarShift-minCaesarShift+1)
}
