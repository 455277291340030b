package main

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/x-xyz/contractmeta/base/ctx"
	"github.com/x-xyz/contractmeta/domain"
)

func printJson(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <pointer>",
		Short: "Resolve a metadata pointer (cid, ipfs://, ar://, data: or http url)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := ctx.From(cmd.Context())
			a, err := newApp(c)
			if err != nil {
				return err
			}
			return printJson(cmd.OutOrStdout(), a.metadata.Resolve(c, domain.MetadataPointer(args[0])))
		},
	}
}

func newFetchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fetch <uri>",
		Short: "Download a document through the configured readers and write it to stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := ctx.From(cmd.Context())
			a, err := newApp(c)
			if err != nil {
				return err
			}
			data, err := a.webResource.Get(c, strings.TrimSpace(args[0]))
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

func newContractCmd() *cobra.Command {
	var network string
	cmd := &cobra.Command{
		Use:   "contract <address>...",
		Short: "Read contractURI() of contracts and resolve their metadata",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := ctx.From(cmd.Context())
			a, err := newApp(c)
			if err != nil {
				return err
			}
			if len(args) == 1 {
				return printJson(cmd.OutOrStdout(), a.metadata.ResolveContract(c, network, domain.Address(args[0])))
			}
			addresses := make([]domain.Address, len(args))
			for i, arg := range args {
				addresses[i] = domain.Address(arg)
			}
			return printJson(cmd.OutOrStdout(), a.metadata.ResolveContracts(c, network, addresses))
		},
	}
	cmd.Flags().StringVar(&network, "network", "", "network id, alias or chain id (default network if empty)")
	return cmd
}

func newStandardCmd() *cobra.Command {
	var network string
	cmd := &cobra.Command{
		Use:   "standard <address>",
		Short: "Detect whether a contract is erc721 or erc1155",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := ctx.From(cmd.Context())
			a, err := newApp(c)
			if err != nil {
				return err
			}
			n, err := a.network.Find(c, network)
			if err != nil {
				return err
			}
			std, err := a.contract.Standard(c, n.ChainId, domain.Address(args[0]).ToLower())
			if err != nil {
				return err
			}
			return printJson(cmd.OutOrStdout(), map[string]interface{}{
				"network":  n.Id,
				"address":  domain.Address(args[0]).ToLower(),
				"standard": std,
			})
		},
	}
	cmd.Flags().StringVar(&network, "network", "", "network id, alias or chain id (default network if empty)")
	return cmd
}

func newNetworksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "networks",
		Short: "List the configured networks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := ctx.From(cmd.Context())
			a, err := newApp(c)
			if err != nil {
				return err
			}
			def, err := a.network.Default(c)
			if err != nil {
				return err
			}
			return printJson(cmd.OutOrStdout(), map[string]interface{}{
				"networks": a.network.List(c),
				"default":  def.Id,
			})
		},
	}
}
