package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/urfave/cli/v2"

	"github.com/davidlaprade/umbra-protocol/cmd/flags"
	"github.com/davidlaprade/umbra-protocol/ens"
	"github.com/davidlaprade/umbra-protocol/interfaces"
)

func main() {
	app := &cli.App{
		Name:  "umbra-keys",
		Usage: "Resolve and publish stealth-key records for ENS domains",
		Flags: []cli.Flag{
			flags.RPCAddrFlag,
			flags.RegistryAddrFlag,
		},
		Commands: []*cli.Command{
			{
				Name:        "namehash",
				Usage:       "Print the namehash node of a domain",
				Description: "Computes the node locally; no RPC connection is made.",
				Flags:       []cli.Flag{flags.DomainFlag},
				Action: func(cCtx *cli.Context) error {
					domain, err := interfaces.NewDomainName(cCtx.String(flags.DomainFlag.Name))
					if err != nil {
						return err
					}

					node, err := ens.Namehash(domain)
					if err != nil {
						return err
					}
					fmt.Println(node.Hex())
					return nil
				},
			},
			{
				Name:        "resolve",
				Usage:       "Fetch the signature, public key, and bytecode records of a domain",
				Description: "Absent records are printed as empty fields.",
				Flags:       []cli.Flag{flags.DomainFlag},
				Action: func(cCtx *cli.Context) error {
					c, err := NewClientConfig(cCtx)
					if err != nil {
						return err
					}
					return c.Resolve()
				},
			},
			{
				Name:        "publish",
				Usage:       "Sign the key-association message and publish the signature record",
				Description: "Requires the private key of an account authorized to update the domain's resolver records.",
				Flags:       []cli.Flag{flags.DomainFlag, flags.PrivateKeyFlag},
				Action: func(cCtx *cli.Context) error {
					c, err := NewClientConfig(cCtx)
					if err != nil {
						return err
					}
					return c.Publish(cCtx.String(flags.PrivateKeyFlag.Name))
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

type Client struct {
	Domain    interfaces.DomainName
	EthClient *ethclient.Client
	Resolver  *ens.ResolverClient
}

func NewClientConfig(cCtx *cli.Context) (*Client, error) {
	domain, err := interfaces.NewDomainName(cCtx.String(flags.DomainFlag.Name))
	if err != nil {
		return nil, fmt.Errorf("could not parse domain: %w", err)
	}

	ethClient, err := ethclient.Dial(cCtx.String(flags.RPCAddrFlag.Name))
	if err != nil {
		return nil, fmt.Errorf("could not dial RPC: %w", err)
	}

	registryAddr := common.HexToAddress(cCtx.String(flags.RegistryAddrFlag.Name))
	resolver, err := ens.NewResolverClient(ethClient, ethClient, registryAddr)
	if err != nil {
		return nil, fmt.Errorf("could not create resolver client: %w", err)
	}

	return &Client{
		Domain:    domain,
		EthClient: ethClient,
		Resolver:  resolver,
	}, nil
}

func (c *Client) Resolve() error {
	signature, err := c.Resolver.GetSignature(c.Domain)
	if err != nil {
		return fmt.Errorf("signature lookup failed: %w", err)
	}

	pubkey, err := c.Resolver.GetPublicKey(c.Domain)
	if err != nil {
		return fmt.Errorf("public key recovery failed: %w", err)
	}

	bytecode, err := c.Resolver.GetBytecode(c.Domain)
	if err != nil {
		return fmt.Errorf("bytecode lookup failed: %w", err)
	}

	encoded, _ := json.Marshal(map[string]string{
		"domain":     c.Domain.String(),
		"signature":  signature,
		"public_key": pubkey,
		"bytecode":   bytecode,
	})
	fmt.Println(string(encoded))
	return nil
}

func (c *Client) Publish(privateKeyHex string) error {
	if privateKeyHex == "" {
		return fmt.Errorf("--%s is required for publish", flags.PrivateKeyFlag.Name)
	}

	privateKey, err := crypto.HexToECDSA(strings.TrimPrefix(privateKeyHex, "0x"))
	if err != nil {
		return fmt.Errorf("could not parse private key: %w", err)
	}

	chainID, err := c.EthClient.ChainID(context.Background())
	if err != nil {
		return fmt.Errorf("could not fetch chain id: %w", err)
	}

	auth, err := bind.NewKeyedTransactorWithChainID(privateKey, chainID)
	if err != nil {
		return fmt.Errorf("could not create transactor: %w", err)
	}
	c.Resolver.SetTransactOpts(auth)

	signature, err := ens.SignKeyAssociation(privateKey)
	if err != nil {
		return err
	}

	tx, err := c.Resolver.SetSignature(c.Domain, signature)
	if err != nil {
		return fmt.Errorf("could not publish signature: %w", err)
	}

	encoded, _ := json.Marshal(map[string]string{
		"domain":    c.Domain.String(),
		"signature": signature,
		"tx":        tx.Hash().Hex(),
	})
	fmt.Println(string(encoded))
	return nil
}
