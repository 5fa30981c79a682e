package aes

// Cipher128 是AES-128密码上下文，保存11个轮密钥
type Cipher128 struct {
	roundKeys [11]State
}

// NewCipher128 用16字节密钥构造AES-128上下文
func NewCipher128(key [KeySize128]byte) *Cipher128 {
	c := &Cipher128{}
	expandKeyInto(key[:], 4, c.roundKeys[:])
	return c
}

// Encrypt 加密src写入dst，dst和src可以是同一数组
func (c *Cipher128) Encrypt(dst, src *[BlockSize]byte) {
	encryptBlock(src, c.roundKeys[:], dst)
}

// Decrypt 解密src写入dst，dst和src可以是同一数组
func (c *Cipher128) Decrypt(dst, src *[BlockSize]byte) {
	decryptBlock(src, c.roundKeys[:], dst)
}

// Block 把c包装成crypto/cipher.Block接口
func (c *Cipher128) Block() BlockCipher {
	return blockAdapter{c}
}
