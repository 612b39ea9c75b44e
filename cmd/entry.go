package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(createEntryCmd())
	rootCmd.AddCommand(getEntryCmd())
	rootCmd.AddCommand(listEntriesCmd())
	rootCmd.AddCommand(updateEntryCmd())
	rootCmd.AddCommand(historyCmd())
}

type entryPayload struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Content        string `json:"content"`
	Version        int64  `json:"version"`
	CreatedBy      string `json:"createdBy"`
	CreatedAt      string `json:"createdAt"`
	LastModifiedBy string `json:"lastModifiedBy"`
	LastModifiedAt string `json:"lastModifiedAt"`
}

type listPayload struct {
	Entries []entryPayload `json:"entries"`
	Total   int64          `json:"total"`
}

type opPayload struct {
	Op   string `json:"op"`
	Line string `json:"line"`
}

type revisionPayload struct {
	ModifiedBy string      `json:"modifiedBy"`
	ModifiedAt string      `json:"modifiedAt"`
	Summary    string      `json:"summary"`
	Diff       []opPayload `json:"diff"`
}

type historyPayload struct {
	Edits []revisionPayload `json:"edits"`
}

func createEntryCmd() *cobra.Command {
	var title string
	var content string
	var author string

	var required = []string{"title", "content", "author"}

	command := &cobra.Command{
		Use:     "create",
		Short:   "create an entry",
		Long:    `create a wiki entry with the given title and content`,
		Example: "wiki create -t <title> -c <content> -u <author>",
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			var entry entryPayload
			err := call(http.MethodPost, "/entries", map[string]string{
				"title":     title,
				"content":   content,
				"createdBy": author,
			}, &entry)
			if err != nil {
				logrus.Error(err)
				return
			}

			logrus.Infof("entry created with id: %s", entry.ID)
		},
	}

	command.Flags().StringVarP(&title, "title", "t", "", "title of the entry (required)")
	command.Flags().StringVarP(&content, "content", "c", "", "content of the entry (required)")
	command.Flags().StringVarP(&author, "author", "u", "", "your name (required)")

	command.Flags().SortFlags = false

	return command
}

func getEntryCmd() *cobra.Command {
	var entryID string

	var required = []string{"entry-id"}

	command := &cobra.Command{
		Use:     "get",
		Short:   "get an entry",
		Example: "wiki get -e <entry-id>",
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			var entry entryPayload
			err := call(http.MethodGet, "/entries/"+entryID, nil, &entry)
			if err != nil {
				logrus.Error(err)
				return
			}

			printField("id", entry.ID)
			printField("title", entry.Title)
			printField("version", strconv.FormatInt(entry.Version, 10))
			printField("created by", entry.CreatedBy)
			printField("last modified by", entry.LastModifiedBy)
			printField("last modified at", entry.LastModifiedAt)
			fmt.Println()
			fmt.Println(entry.Content)
		},
	}

	command.Flags().StringVarP(&entryID, "entry-id", "e", "", "entry id (required)")
	command.Flags().SortFlags = false

	return command
}

func listEntriesCmd() *cobra.Command {
	command := &cobra.Command{
		Use:   "list",
		Short: "list entries",
		Run: func(cmd *cobra.Command, args []string) {
			var list listPayload
			err := call(http.MethodGet, "/entries", nil, &list)
			if err != nil {
				logrus.Error(err)
				return
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"ID", "Title", "Version", "Last Modified By", "Last Modified At"})
			for _, entry := range list.Entries {
				table.Append([]string{entry.ID, entry.Title, strconv.FormatInt(entry.Version, 10), entry.LastModifiedBy, entry.LastModifiedAt})
			}

			table.Render()
		},
	}

	return command
}

func updateEntryCmd() *cobra.Command {
	var entryID string
	var content string
	var author string
	var summary string
	var version int64

	var required = []string{"entry-id", "content", "author"}

	command := &cobra.Command{
		Use:   "update",
		Short: "update an entry",
		Long: `Update the content of an entry with the given id.

Constraint:
 1. version is not provided => the entry content is overwritten unconditionally.
 2. version provided => updates the entry only if the version still matches.
`,
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			if version == -1 {
				color.Magenta("overwriting entry: %s\n", entryID)
			}

			body := map[string]interface{}{
				"content":    content,
				"modifiedBy": author,
				"summary":    summary,
			}
			if version != -1 {
				body["expectedVersion"] = version
			}

			var entry entryPayload
			err := call(http.MethodPut, "/entries/"+entryID, body, &entry)
			if err != nil {
				logrus.Error(err)
				return
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"ID", "Version"})
			table.Append([]string{entry.ID, strconv.FormatInt(entry.Version, 10)})
			table.Render()
		},
	}

	command.Flags().StringVarP(&entryID, "entry-id", "e", "", "entry id (required)")
	command.Flags().StringVarP(&content, "content", "c", "", "new content (required)")
	command.Flags().StringVarP(&author, "author", "u", "", "your name (required)")
	command.Flags().StringVarP(&summary, "summary", "s", "", "edit summary")
	command.Flags().Int64VarP(&version, "version", "v", -1, "expected version")

	command.Flags().SortFlags = false

	return command
}

func historyCmd() *cobra.Command {
	var entryID string

	var required = []string{"entry-id"}

	command := &cobra.Command{
		Use:     "history",
		Short:   "show the edit history of an entry",
		Example: "wiki history -e <entry-id>",
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			var history historyPayload
			err := call(http.MethodGet, "/entries/"+entryID+"/edits", nil, &history)
			if err != nil {
				logrus.Error(err)
				return
			}

			for _, revision := range history.Edits {
				color.Cyan("%s by %s", revision.ModifiedAt, revision.ModifiedBy)
				if revision.Summary != "" {
					fmt.Printf("summary: %s\n", revision.Summary)
				}

				for _, op := range revision.Diff {
					switch op.Op {
					case "added":
						color.Green("+ %s", op.Line)
					case "removed":
						color.Red("- %s", op.Line)
					default:
						fmt.Printf("  %s\n", op.Line)
					}
				}

				fmt.Println()
			}
		},
	}

	command.Flags().StringVarP(&entryID, "entry-id", "e", "", "entry id (required)")
	command.Flags().SortFlags = false

	return command
}

// call sends a json request to the configured server and decodes the response
// into out. Non-2xx responses are surfaced as errors with the server message.
func call(method, path string, body interface{}, out interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, serverURL()+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		var apiErr struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(res.Body).Decode(&apiErr); err == nil && apiErr.Error != "" {
			return fmt.Errorf("%s: %s", res.Status, apiErr.Error)
		}

		return fmt.Errorf("request failed: %s", res.Status)
	}

	return json.NewDecoder(res.Body).Decode(out)
}

func printField(label, value string) {
	color.Set(color.FgCyan)
	fmt.Print(label)
	color.Unset()
	fmt.Printf(": %s\n", value)
}

// checkMissingFlags checks if the required flags are set and returns ok if they are set
func checkMissingFlags(cmd *cobra.Command, flags []string) bool {
	var missingFlags []string
	var providedFlags []string
	for _, required := range flags {
		if cmd.Flag(required).Changed == false {
			missingFlags = append(missingFlags, required)
		} else {
			value := cmd.Flag(required).Value.String()
			providedFlags = append(providedFlags, fmt.Sprintf("--%s=%s", required, value))
		}
	}

	if len(missingFlags) > 0 {
		var msg string
		for _, f := range missingFlags {
			msg += fmt.Sprintf("--%s ", f)
		}

		color.Red("missing: %s\n", msg)
		if len(providedFlags) > 0 {
			provided := strings.Join(providedFlags, " ")
			color.Green("provide: %s\n", provided)
		}

		cmd.Println("")

		cmd.Usage()

		return true
	}

	return false
}
