package aes

// Cipher256 是AES-256密码上下文，保存15个轮密钥
type Cipher256 struct {
	roundKeys [15]State
}

// NewCipher256 用32字节密钥构造AES-256上下文
func NewCipher256(key [KeySize256]byte) *Cipher256 {
	c := &Cipher256{}
	expandKeyInto(key[:], 8, c.roundKeys[:])
	return c
}

// Encrypt 加密src写入dst，dst和src可以是同一数组
func (c *Cipher256) Encrypt(dst, src *[BlockSize]byte) {
	encryptBlock(src, c.roundKeys[:], dst)
}

// Decrypt 解密src写入dst，dst和src可以是同一数组
func (c *Cipher256) Decrypt(dst, src *[BlockSize]byte) {
	decryptBlock(src, c.roundKeys[:], dst)
}

// Block 把c包装成crypto/cipher.Block接口
func (c *Cipher256) Block() BlockCipher {
	return blockAdapter{c}
}
