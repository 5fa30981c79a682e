package aes

// Cipher192 是AES-192密码上下文，保存13个轮密钥
type Cipher192 struct {
	roundKeys [13]State
}

// NewCipher192 用24字节密钥构造AES-192上下文
func NewCipher192(key [KeySize192]byte) *Cipher192 {
	c := &Cipher192{}
	expandKeyInto(key[:], 6, c.roundKeys[:])
	return c
}

// Encrypt 加密src写入dst，dst和src可以是同一数组
func (c *Cipher192) Encrypt(dst, src *[BlockSize]byte) {
	encryptBlock(src, c.roundKeys[:], dst)
}

// Decrypt 解密src写入dst，dst和src可以是同一数组
func (c *Cipher192) Decrypt(dst, src *[BlockSize]byte) {
	decryptBlock(src, c.roundKeys[:], dst)
}

// Block 把c包装成crypto/cipher.Block接口
func (c *Cipher192) Block() BlockCipher {
	return blockAdapter{c}
}
