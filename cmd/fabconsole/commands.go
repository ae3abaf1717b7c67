package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pitabwire/fabconsole/console"
	"github.com/pitabwire/fabconsole/internal/catalog"
	"github.com/pitabwire/fabconsole/model"
)

func (a *app) operationsCommand() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "operations",
		Short: "List every console operation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ops := catalog.All()
			if asJSON {
				return writeJSON(a.stdout, ops)
			}
			tw := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "OPERATION\tMETHOD\tPATH\tREQUIRED")
			for _, op := range ops {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", op.ID, op.Method, op.PathTemplate, strings.Join(op.Required, ","))
			}
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print descriptors as JSON")
	return cmd
}

func (a *app) callCommand() *cobra.Command {
	var (
		params  []string
		jsons   []string
		headers []string
		camel   bool
	)
	cmd := &cobra.Command{
		Use:   "call OPERATION",
		Short: "Invoke any console operation by id",
		Example: `  fabconsole call getComponent --param id=org1ca --param cache=skip
  fabconsole call createCa --param displayName=org1ca --json configOverride='{"ca":{}}'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fields, err := parseFields(params, jsons)
			if err != nil {
				return err
			}
			hdrs, err := parseKeyValues(headers)
			if err != nil {
				return fmt.Errorf("--header: %w", err)
			}

			svc, err := a.service(cmd.Context())
			if err != nil {
				return err
			}
			resp, err := svc.Call(cmd.Context(), args[0], model.CallParameters{Fields: fields, Headers: hdrs})
			if err != nil {
				return err
			}
			result := resp.Result
			if camel {
				result = model.FixCase(result)
			}
			return writeResult(a.stdout, result)
		},
	}
	cmd.Flags().StringArrayVarP(&params, "param", "p", nil, "field as name=value, value sent as a string")
	cmd.Flags().StringArrayVarP(&jsons, "json", "j", nil, "field as name=JSON, for numbers, booleans, lists and objects")
	cmd.Flags().StringArrayVarP(&headers, "header", "H", nil, "request header as Name=value")
	cmd.Flags().BoolVar(&camel, "camel", false, "add camelCase twins of snake_case result keys")
	return cmd
}

func (a *app) healthCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Show console health",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service(cmd.Context())
			if err != nil {
				return err
			}
			resp, err := svc.GetHealth(cmd.Context(), nil)
			if err != nil {
				return err
			}
			return writeResult(a.stdout, resp.Result)
		},
	}
}

func (a *app) versionsCommand() *cobra.Command {
	var componentType, constraint string
	cmd := &cobra.Command{
		Use:   "versions",
		Short: "Show deployable Fabric versions for a component type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service(cmd.Context())
			if err != nil {
				return err
			}
			resp, err := svc.GetFabVersions(cmd.Context(), &console.GetFabVersionsOptions{Cache: model.CacheSkip})
			if err != nil {
				return err
			}
			fv, err := console.ParseFabricVersions(resp)
			if err != nil {
				return err
			}

			if constraint != "" {
				v, err := fv.Matching(componentType, constraint)
				if err != nil {
					return err
				}
				fmt.Fprintln(a.stdout, v.Version)
				return nil
			}

			sorted := fv.Sorted(componentType)
			if len(sorted) == 0 {
				return fmt.Errorf("no versions for %q", componentType)
			}
			def, _ := fv.Default(componentType)
			for _, v := range sorted {
				marker := ""
				if v.Version == def.Version {
					marker = " (default)"
				}
				fmt.Fprintln(a.stdout, v.Version+marker)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&componentType, "type", "t", "peer", "component type: ca, peer or orderer")
	cmd.Flags().StringVar(&constraint, "constraint", "", `print only the newest version matching a semver constraint, e.g. "~2.2"`)
	return cmd
}

func (a *app) verifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "verify-openapi",
		Short: "Compare the operation catalog with the console's OpenAPI document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service(cmd.Context())
			if err != nil {
				return err
			}
			drifts, err := svc.VerifyOpenAPI(cmd.Context())
			if err != nil {
				return err
			}
			for _, d := range drifts {
				fmt.Fprintln(a.stdout, d.String())
			}
			if len(drifts) > 0 {
				return fmt.Errorf("%d differences found", len(drifts))
			}
			fmt.Fprintln(a.stdout, "catalog matches the console document")
			return nil
		},
	}
}

// parseKeyValues splits name=value pairs. The value may contain '='.
func parseKeyValues(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	out := make(map[string]string, len(pairs))
	for _, p := range pairs {
		name, value, ok := strings.Cut(p, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("%q is not name=value", p)
		}
		out[name] = value
	}
	return out, nil
}

func parseFields(params, jsons []string) (map[string]any, error) {
	plain, err := parseKeyValues(params)
	if err != nil {
		return nil, fmt.Errorf("--param: %w", err)
	}
	raw, err := parseKeyValues(jsons)
	if err != nil {
		return nil, fmt.Errorf("--json: %w", err)
	}

	fields := make(map[string]any, len(plain)+len(raw))
	for k, v := range plain {
		fields[k] = v
	}
	for k, v := range raw {
		var decoded any
		if err := json.Unmarshal([]byte(v), &decoded); err != nil {
			return nil, fmt.Errorf("--json %s: %w", k, err)
		}
		fields[k] = decoded
	}
	return fields, nil
}

// writeResult prints text results as-is and everything else as indented JSON.
func writeResult(w io.Writer, result any) error {
	if s, ok := result.(string); ok {
		_, err := io.WriteString(w, s)
		if err == nil && !strings.HasSuffix(s, "\n") {
			_, err = io.WriteString(w, "\n")
		}
		return err
	}
	return writeJSON(w, result)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
