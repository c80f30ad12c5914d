package cmd

import (
	"encoding/json"
	"fmt"
)

// ToolCmd prints metadata and the sanitized parameter schema for one tool.
type ToolCmd struct {
	Name string `short:"n" long:"name" description:"tool name" required:"yes"`
	JSON bool   `long:"json" description:"print result as JSON"`
}

func (c *ToolCmd) Execute(_ []string) error {
	session, err := sessionSingleton()
	if err != nil {
		return err
	}
	defer session.Close()

	entry, ok := session.Tool(c.Name)
	if !ok {
		return fmt.Errorf("tool %q not found", c.Name)
	}

	if c.JSON {
		out := struct {
			Name            string      `json:"name"`
			Description     string      `json:"description"`
			ParameterSchema interface{} `json:"parameterSchema"`
			OriginalSchema  interface{} `json:"originalSchema,omitempty"`
		}{entry.Name, entry.Description, entry.Schema, entry.RawSchema}
		data, _ := json.MarshalIndent(out, "", "  ")
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("Name : %s\n", entry.Name)
	fmt.Printf("Desc : %s\n", entry.Description)
	schemaJSON, _ := json.MarshalIndent(entry.Schema, "", "  ")
	fmt.Printf("ParameterSchema:\n%s\n", string(schemaJSON))
	if entry.RawSchema != nil {
		rawJSON, _ := json.MarshalIndent(entry.RawSchema, "", "  ")
		fmt.Printf("OriginalSchema (validator fell back):\n%s\n", string(rawJSON))
	}
	return nil
}
