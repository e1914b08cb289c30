package cmd

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var keygenOut string

var keygenCmd = &cobra.Command{
	Use:   "keygen",
	Short: "Generate a hex-encoded ed25519 relayer key",
	RunE: func(cmd *cobra.Command, args []string) error {
		pub, priv, err := ed25519.GenerateKey(rand.Reader)
		if err != nil {
			return err
		}
		if err := os.WriteFile(keygenOut, []byte(hex.EncodeToString(priv)), 0600); err != nil {
			return fmt.Errorf("failed to write key file: %w", err)
		}
		fmt.Printf("relayer public key: %s\n", hex.EncodeToString(pub))
		fmt.Printf("private key written to %s\n", keygenOut)
		return nil
	},
}

func init() {
	keygenCmd.Flags().StringVar(&keygenOut, "out", "relayer.key", "output path for the private key")
	rootCmd.AddCommand(keygenCmd)
}
