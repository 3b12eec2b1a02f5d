/*
Package ofp4 implements openflow 1.3 protocol structures.

ofp4: ofp is short for openflow protocol, and 4 is "Protocol version 0x04".

Every record family (actions, instructions, match fields, queue
properties, meter bands, table feature properties, hello elements and
multipart bodies) is an interface with one struct per alternative, so
the type on the wire always follows from the Go type.

Decode parses one message and fails with an *Error naming the family
of the failure (short input, excess bytes, or a bad value) and the
record it happened in. Encode validates before it writes.

	msg, err := ofp4.Decode(buf)
	if ofp4.IsShort(err, ofp4.RecordMessage) {
		// wait for more bytes
	}
	out, err := ofp4.Encode(ofp4.NewMessage(xid, &ofp4.EchoReply{Data: echo.Data}))
*/
package ofp4
