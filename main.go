package main

import (
	"encoding/hex"
	"fmt"
	"log"

	"github.com/laenix/ctaes/aes"
)

func main() {
	// 示例明文：单个16字节分组
	var plaintext [16]byte
	copy(plaintext[:], "single AES block")
	fmt.Printf("明文 (Hex): %s\n\n", hex.EncodeToString(plaintext[:]))

	fmt.Println("=== AES-128 ===")
	demonstrate128(plaintext)

	fmt.Println("\n=== AES-192 ===")
	demonstrate192(plaintext)

	fmt.Println("\n=== AES-256 ===")
	demonstrate256(plaintext)
}

func demonstrate128(plaintext [16]byte) {
	var key [aes.KeySize128]byte
	copy(key[:], "0123456789ABCDEF")

	c := aes.NewCipher128(key)

	var ciphertext [16]byte
	c.Encrypt(&ciphertext, &plaintext)
	fmt.Printf("密文 (Hex): %s\n", hex.EncodeToString(ciphertext[:]))

	var recovered [16]byte
	c.Decrypt(&recovered, &ciphertext)
	if recovered != plaintext {
		log.Fatalf("AES-128往返失败")
	}
	fmt.Printf("解密后明文: %s\n", recovered[:])
}

func demonstrate192(plaintext [16]byte) {
	var key [aes.KeySize192]byte
	copy(key[:], "0123456789ABCDEF01234567")

	c := aes.NewCipher192(key)

	var ciphertext [16]byte
	c.Encrypt(&ciphertext, &plaintext)
	fmt.Printf("密文 (Hex): %s\n", hex.EncodeToString(ciphertext[:]))

	var recovered [16]byte
	c.Decrypt(&recovered, &ciphertext)
	if recovered != plaintext {
		log.Fatalf("AES-192往返失败")
	}
	fmt.Printf("解密后明文: %s\n", recovered[:])
}

func demonstrate256(plaintext [16]byte) {
	var key [aes.KeySize256]byte
	copy(key[:], "0123456789ABCDEF0123456789ABCDEF")

	c := aes.NewCipher256(key)

	var ciphertext [16]byte
	c.Encrypt(&ciphertext, &plaintext)
	fmt.Printf("密文 (Hex): %s\n", hex.EncodeToString(ciphertext[:]))

	var recovered [16]byte
	c.Decrypt(&recovered, &ciphertext)
	if recovered != plaintext {
		log.Fatalf("AES-256往返失败")
	}
	fmt.Printf("解密后明文: %s\n", recovered[:])
}
