// Package sim is the local deterministic simulation engine. It parses player
// commands, resolves the entities they reference, dispatches verbs over the
// world document's property bags, advances world time, and validates
// externally-proposed mutations. Everything here is a synchronous, in-memory
// computation: the engine clones the world model before touching it and never
// blocks.
package sim

import "strings"

// prepositions, scanned in order. The first one found past the verb splits
// the command into direct and indirect object.
var prepositions = []string{"on", "in", "from", "with", "at", "to", "inside", "using"}

// Command is the structured form of a raw player command.
type Command struct {
	Verb           string
	DirectObject   string
	Preposition    string
	IndirectObject string
}

// Parse turns raw text into a Command. It is total: any input, including the
// empty string, yields a Command without error. Missing pieces surface later
// as "what do you want to <verb>?" refusals.
func Parse(raw string) Command {
	parts := strings.Fields(strings.ToLower(strings.TrimSpace(raw)))
	if len(parts) == 0 {
		return Command{}
	}

	cmd := Command{Verb: parts[0]}
	rest := parts[1:]

	prepIndex := -1
	for _, prep := range prepositions {
		for i, tok := range rest {
			if tok == prep {
				prepIndex = i
				break
			}
		}
		if prepIndex >= 0 {
			break
		}
	}

	// A preposition directly after the verb ("look in chest") still splits;
	// the direct object is then empty and the handler works off the
	// indirect object.
	if prepIndex >= 0 {
		cmd.DirectObject = strings.Join(rest[:prepIndex], " ")
		cmd.Preposition = rest[prepIndex]
		cmd.IndirectObject = strings.Join(rest[prepIndex+1:], " ")
		return cmd
	}

	cmd.DirectObject = strings.Join(rest, " ")
	return cmd
}
