//The MIT License (MIT)

//Copyright (c) 2013 didier amyot

//Permission is hereby granted, free of charge, to any person obtaining a copy
//of this software and associated documentation files (the "Software"), to deal
//in the Software without restriction, including without limitation the rights
//to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
//copies of the Software, and to permit persons to whom the Software is
//furnished to do so, subject to the following conditions:

//The above copyright notice and this permission notice shall be included in
//all copies or substantial portions of the Software.

//THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
//IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
//FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
//AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
//LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
//OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
//THE SOFTWARE.

/*
Package paillier implements the Paillier additively-homomorphic public-key
cryptosystem. See http://en.wikipedia.org/wiki/Paillier_cryptosystem for an
introduction.

Keys are generated from two distinct random primes of equal bit length at one
of three standard security levels (Level2048, Level3072, Level4096). Every
ciphertext and nonce produced under a key is associated with that key;
mixing values across keys, or across security levels, is not supported.

The secret-key holder can decrypt a ciphertext to recover its plaintext, or
open it to recover both the plaintext and the randomising nonce used at
encryption time. Ciphertexts and their nonces support a full set of
homomorphic operations (add, subtract, negate, mix in a plaintext, multiply
by a scalar) that commute with decryption and open.

This package does not generate, validate or transport its own primes beyond
the concurrent search in GeneratePrime and the primality, width and
distinctness checks in FromPrimes; production callers are expected to
supply a cryptographically secure rand.Reader. Serialisation of keys and
ciphertexts, zero-knowledge proofs, threshold variants and any other
higher-level protocol are outside this package and are left to callers.
*/
package paillier
