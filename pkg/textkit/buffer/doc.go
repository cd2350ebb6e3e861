/*
Package buffer provides a growable byte string with an explicit,
block-based growth policy.

# Overview

A Buffer owns one contiguous allocation. Its capacity is always a positive
multiple of the block size and always leaves room for one trailing NUL
byte, so the contents can be handed to code that expects a terminated
string:

	b := buffer.New("Hello,", 0)
	_ = b.AppendByte(' ')
	_ = b.Append("World!")
	fmt.Println(b.String()) // Hello, World!

# Growth

Appends only reallocate when the free space is insufficient. The new
capacity is the smallest multiple of the block size that holds the new
length plus the terminator:

	b := buffer.New("", 2) // Cap() == 2
	_ = b.AppendByte('a')   // Cap() == 2 (1 byte + NUL)
	_ = b.Append("BBB")     // Cap() == 6 (4 bytes + NUL, rounded up)

A block size of 0 selects DefaultBlockSize.

# Limits

WithLimit caps the capacity a Buffer may grow to. An append that would
exceed the cap returns ErrTooLarge and leaves the Buffer unchanged.

# Thread Safety

Buffer has no internal locking. Callers sharing one across goroutines
must synchronize access themselves.
*/
package buffer
